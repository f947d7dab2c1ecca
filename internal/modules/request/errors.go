package request

import "errors"

var (
	ErrNotFound           = errors.New("request not found")
	ErrNotOwned           = errors.New("request not owned by caller")
	ErrServiceUnavailable = errors.New("service inactive or missing")
	ErrPropertyNotOwned   = errors.New("property not owned by caller")
	ErrInvalidStatus      = errors.New("unknown status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrNotPending         = errors.New("request is no longer pending")
)
