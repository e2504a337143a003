package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT. The "sub" claim is the owner address.
type Token struct {
	// Token is the underlying JWT, excluded from JSON.
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
	// Owner is the parsed subject claim.
	Owner common.Address `json:"-"`
}

// GetOwner parses the subject claim as a hex address.
func (t *Token) GetOwner() (common.Address, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return common.Address{}, fmt.Errorf("error extracting owner from token: %w", err)
	}
	if !common.IsHexAddress(sub) {
		return common.Address{}, fmt.Errorf("%w: token subject %q", ErrInvalidAddress, sub)
	}
	return common.HexToAddress(sub), nil
}

func (t *Token) String() string {
	return t.SignedString
}
