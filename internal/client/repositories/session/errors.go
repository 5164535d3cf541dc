package session

import "errors"

// ErrStorageFailure marks any error coming from the storage medium.
var ErrStorageFailure = errors.New("session storage failure")
