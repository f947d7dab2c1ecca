package reservation

import "errors"

var (
	ErrNotFound         = errors.New("reservation not found")
	ErrProviderNotFound = errors.New("provider inactive or missing")
	ErrNotAssignable    = errors.New("reservation can no longer be assigned")
	ErrClientNotFound   = errors.New("client account not found")
	ErrInvalidStatus    = errors.New("unknown status")
)
