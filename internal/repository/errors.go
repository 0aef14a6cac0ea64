package repository

import "errors"

// ErrNotFound is returned by every implementation when a record does not
// exist, so services never have to know which storage mode is active.
var ErrNotFound = errors.New("record not found")
