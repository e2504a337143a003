// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Error categories. Every concrete error below wraps exactly one of them, so
// callers can branch on the category with [errors.Is] without knowing the
// concrete cause.
var (
	// ErrValidation covers malformed addresses, out-of-domain numeric input and
	// empty required fields. Rejected before anything is encrypted or submitted.
	ErrValidation = errors.New("validation error")
	// ErrAccess covers operations on deleted records, indexes out of range and
	// missing decryption rights. Never retried.
	ErrAccess = errors.New("access error")
	// ErrProtocolMismatch is fatal to a session.
	ErrProtocolMismatch = errors.New("confidential protocol mismatch")
	// ErrAuthorization covers expired grants, declined signatures and malformed
	// typed messages. Safe to retry from a fresh grant.
	ErrAuthorization = errors.New("authorization failure")
	// ErrHandleResolution means the transaction went through but its result
	// handle could not be recovered.
	ErrHandleResolution = errors.New("handle resolution failure")
)

var (
	ErrInvalidAddress       = categorized(ErrValidation, "invalid address")
	ErrValueOutOfDomain     = categorized(ErrValidation, "value out of domain")
	ErrEmptyField           = categorized(ErrValidation, "required field is empty")
	ErrUnknownIndicator     = categorized(ErrValidation, "unknown indicator type")
	ErrUnknownRecordKind    = categorized(ErrValidation, "unknown record kind")
	ErrInvalidDateRange     = categorized(ErrValidation, "start date is after end date")
	ErrInvalidHandle        = categorized(ErrValidation, "invalid ciphertext handle")
	ErrInvalidInputProof    = categorized(ErrValidation, "invalid input proof")
	ErrInvalidHandleType    = categorized(ErrValidation, "ciphertext handle has unexpected type")
	ErrRecordDeleted        = categorized(ErrAccess, "Record deleted")
	ErrIndexOutOfRange      = categorized(ErrAccess, "index out of range")
	ErrMissingRights        = categorized(ErrAccess, "missing decryption rights")
	ErrNoActiveHealthRecord = categorized(ErrAccess, "no active health record")
	ErrNoHealthScore        = categorized(ErrAccess, "no health score stored")
	ErrUnknownHandle        = categorized(ErrAccess, "unknown ciphertext handle")
	ErrUnsupportedProtocol  = categorized(ErrProtocolMismatch, "unsupported confidential protocol id")
	ErrGrantExpired         = categorized(ErrAuthorization, "decryption grant expired")
	ErrGrantNotYetValid     = categorized(ErrAuthorization, "decryption grant not yet valid")
	ErrGrantConsumed        = categorized(ErrAuthorization, "decryption grant already consumed")
	ErrSignerDeclined       = categorized(ErrAuthorization, "signer declined the request")
	ErrBadSignature         = categorized(ErrAuthorization, "signature does not match user address")
	ErrMalformedGrant       = categorized(ErrAuthorization, "malformed decryption grant")
	ErrContractNotInGrant   = categorized(ErrAuthorization, "contract is not covered by the grant")
	ErrNoResultLog          = categorized(ErrHandleResolution, "no result log in receipt")
	ErrSimulationFailed     = categorized(ErrHandleResolution, "simulation fallback failed")
	ErrMalformedHandle      = categorized(ErrHandleResolution, "result handle failed normalization")
	ErrZeroHandle           = categorized(ErrHandleResolution, "result handle is all zeros")
)

type categoryError struct {
	category error
	msg      string
}

func categorized(category error, msg string) error {
	return &categoryError{category: category, msg: msg}
}

func (e *categoryError) Error() string { return e.msg }

func (e *categoryError) Unwrap() error { return e.category }

// Category returns the category sentinel err belongs to, or nil.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrAccess, ErrProtocolMismatch, ErrAuthorization, ErrHandleResolution} {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}

// CategoryName is the short label used in API error bodies.
func CategoryName(err error) string {
	switch Category(err) {
	case ErrValidation:
		return "validation"
	case ErrAccess:
		return "access"
	case ErrProtocolMismatch:
		return "protocol_mismatch"
	case ErrAuthorization:
		return "authorization"
	case ErrHandleResolution:
		return "handle_resolution"
	default:
		return "internal"
	}
}

// Errorf wraps a sentinel with call-specific detail.
func Errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
