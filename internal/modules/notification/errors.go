package notification

import "errors"

var (
	ErrNotFound         = errors.New("notification not found")
	ErrInvalidType      = errors.New("unknown notification type")
	ErrMissingRecipient = errors.New("missing recipient")
	ErrEmptyMessage     = errors.New("empty message")
)
