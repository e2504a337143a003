package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrRateLimited       = errors.New("rate limited by the ledger")
	ErrNotFound          = errors.New("not found")
	ErrServer            = errors.New("ledger internal error")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrReceiptPending    = errors.New("transaction is not sealed yet")
	ErrFinalityTimeout   = errors.New("transaction was not sealed in time")
	ErrInvalidAddress    = errors.New("invalid ledger address")
	ErrMissingAuthHeader = errors.New("login response carries no bearer token")
)

// RemoteError is a non-2xx answer from the ledger. Kind is the ledger
// sentinel the body named, or one of this package's transport sentinels.
type RemoteError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("ledger answered %d: %s", e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}
