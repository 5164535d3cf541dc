package client

import (
	"errors"
	"fmt"
)

// DefaultLoginFailureMessage is shown when the backend rejects a login
// without saying why.
const DefaultLoginFailureMessage = "Falha ao fazer login"

var (
	// ErrNetworkFailure covers unreachable hosts, timeouts and malformed
	// response bodies.
	ErrNetworkFailure = errors.New("network failure")
	// ErrAuthRejected is matched by every *AuthRejectedError.
	ErrAuthRejected = errors.New("auth rejected")
)

// AuthRejectedError is returned when the backend answers a login with a
// non-2xx status. Message is user-facing.
type AuthRejectedError struct {
	Status  int
	Message string
}

func (e *AuthRejectedError) Error() string {
	return fmt.Sprintf("auth rejected (HTTP %d): %s", e.Status, e.Message)
}

func (e *AuthRejectedError) Is(target error) bool {
	return target == ErrAuthRejected
}
