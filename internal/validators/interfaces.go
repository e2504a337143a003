// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks ledger call inputs before any state is touched:
// record payloads, encrypted handles and their input proofs, indicator and
// proof identifiers. A rejected call never reaches the unit of work.
//
// Every error returned by a validator wraps models.ErrValidation, so callers
// can map it to a client error without inspecting the concrete cause.
package validators

import "context"

// Validator checks one call input. fields, when given, limits the check to
// the named parts of the input.
type Validator interface {
	Validate(ctx context.Context, input any, fields ...string) error
}
