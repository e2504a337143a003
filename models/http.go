package models

import "errors"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	// Category is the CategoryName of the error, "internal" for errors
	// outside the ledger taxonomy.
	Category string `json:"category"`
	// Code is the message of the concrete sentinel, empty when the error
	// has none. Clients turn it back into the sentinel with SentinelByCode.
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

var sentinels = []error{
	ErrInvalidAddress, ErrValueOutOfDomain, ErrEmptyField, ErrUnknownIndicator,
	ErrUnknownRecordKind, ErrInvalidDateRange, ErrInvalidHandle, ErrInvalidInputProof,
	ErrInvalidHandleType, ErrRecordDeleted, ErrIndexOutOfRange, ErrMissingRights,
	ErrNoActiveHealthRecord, ErrNoHealthScore, ErrUnknownHandle, ErrUnsupportedProtocol,
	ErrGrantExpired, ErrGrantNotYetValid, ErrGrantConsumed, ErrSignerDeclined,
	ErrBadSignature, ErrMalformedGrant, ErrContractNotInGrant, ErrNoResultLog,
	ErrSimulationFailed, ErrMalformedHandle, ErrZeroHandle,
}

// Sentinel returns the concrete ledger error err wraps, or nil.
func Sentinel(err error) error {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s
		}
	}
	return nil
}

// NewErrorResponse describes err for an API client.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Category: CategoryName(err), Message: err.Error()}
	if s := Sentinel(err); s != nil {
		resp.Code = s.Error()
	}
	return resp
}

// SentinelByCode is the inverse of ErrorResponse.Code.
func SentinelByCode(code string) error {
	for _, s := range sentinels {
		if s.Error() == code {
			return s
		}
	}
	return nil
}

// CategoryByName is the inverse of CategoryName. Unknown names give nil.
func CategoryByName(name string) error {
	for _, c := range []error{ErrValidation, ErrAccess, ErrProtocolMismatch, ErrAuthorization, ErrHandleResolution} {
		if CategoryName(c) == name {
			return c
		}
	}
	return nil
}
