package authz

import (
	"errors"
	"fmt"
)

var (
	ErrNoSigningKey  = errors.New("signing key is empty")
	ErrWrongPassword = errors.New("key file cannot be opened with this password")
)

// FailedAttempt is returned when a grant could not be produced. Reached is
// the last state the attempt got to before it failed.
type FailedAttempt struct {
	Reached State
	Reason  error
}

func (e *FailedAttempt) Error() string {
	return fmt.Sprintf("decryption grant failed after %s: %v", e.Reached, e.Reason)
}

func (e *FailedAttempt) Unwrap() error {
	return e.Reason
}
