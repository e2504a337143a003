// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authz

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/TessVincent/prismhealth/models"
)

// Signer produces secp256k1 signatures on behalf of one account.
type Signer interface {
	Address() common.Address
	// SignTypedData signs an EIP-712 digest. A signer that refuses returns
	// an error wrapping models.ErrSignerDeclined.
	SignTypedData(ctx context.Context, hash []byte) ([]byte, error)
}

// KeySigner signs with a private key held in memory.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewKeySigner(key *ecdsa.PrivateKey) (*KeySigner, error) {
	if key == nil {
		return nil, ErrNoSigningKey
	}
	return &KeySigner{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

func (s *KeySigner) Address() common.Address {
	return s.address
}

// SignTypedData signs hash as is. A cancelled context counts as a decline.
func (s *KeySigner) SignTypedData(ctx context.Context, hash []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSignerDeclined, err)
	}
	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrMalformedGrant, err)
	}
	return sig, nil
}

// SignText signs text as an EIP-191 personal message.
func (s *KeySigner) SignText(ctx context.Context, text string) ([]byte, error) {
	return s.SignTypedData(ctx, accounts.TextHash([]byte(text)))
}
