// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey is the key under which the auth middleware stores the address
// of the authenticated owner.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OwnerCtxKey, owner)
var OwnerCtxKey = contextKey("owner")

// GetOwnerFromContext retrieves the authenticated owner from the context.
//
// Returns the owner address and an ok flag:
//   - ok == true:  value is found, has the correct type and is not the zero address
//   - ok == false: value is missing, zero or has an unexpected type
func GetOwnerFromContext(ctx context.Context) (common.Address, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(common.Address)
	if !ok || owner == (common.Address{}) {
		return common.Address{}, false
	}
	return owner, true
}

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner common.Address) context.Context {
	return context.WithValue(ctx, OwnerCtxKey, owner)
}
