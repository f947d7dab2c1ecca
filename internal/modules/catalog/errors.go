package catalog

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrNotOwned means the row exists but belongs to someone else. Kept
	// distinct from ErrNotFound for logging; handlers answer 404 for both
	// so the API does not leak which ids exist.
	ErrNotOwned = errors.New("not owned by caller")
)
