package report

import "errors"

var ErrOwnerNotFound = errors.New("owner not found")
