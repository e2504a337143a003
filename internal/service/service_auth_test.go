// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ecdsa"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

const testChainID = 31337

func newTestAuthService(t *testing.T) *authService {
	t.Helper()
	svc := NewAuthService(config.App{
		ChainID:         testChainID,
		ChallengeWindow: 5 * time.Minute,
		TokenSignKey:    "test-secret",
		TokenIssuer:     "prismhealth-test",
		TokenDuration:   time.Hour,
	}, logger.Nop()).(*authService)
	svc.now = func() time.Time { return time.Unix(grantStart, 0) }
	return svc
}

func signLogin(t *testing.T, key *ecdsa.PrivateKey, chainID uint64, issuedAt int64) models.LoginRequest {
	t.Helper()
	addr := crypto.PubkeyToAddress(key.PublicKey)
	sig, err := crypto.Sign(accounts.TextHash([]byte(models.LoginChallenge(addr, chainID, issuedAt))), key)
	require.NoError(t, err)
	return models.LoginRequest{Address: addr, IssuedAt: issuedAt, Signature: sig}
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	req := signLogin(t, key, testChainID, grantStart-60)
	token, err := svc.Login(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, req.Address, token.Owner)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, req.Address, parsed.Owner)
}

func TestAuthService_Login_Rejects(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     func() models.LoginRequest
		wantErr error
	}{
		{
			name:    "challenge too old",
			req:     func() models.LoginRequest { return signLogin(t, key, testChainID, grantStart-600) },
			wantErr: ErrChallengeExpired,
		},
		{
			name:    "challenge from the future",
			req:     func() models.LoginRequest { return signLogin(t, key, testChainID, grantStart+600) },
			wantErr: ErrChallengeExpired,
		},
		{
			name:    "other chain",
			req:     func() models.LoginRequest { return signLogin(t, key, 1, grantStart) },
			wantErr: ErrChallengeSignature,
		},
		{
			name: "signed by another key",
			req: func() models.LoginRequest {
				req := signLogin(t, other, testChainID, grantStart)
				req.Address = crypto.PubkeyToAddress(key.PublicKey)
				return req
			},
			wantErr: ErrChallengeSignature,
		},
		{
			name: "truncated signature",
			req: func() models.LoginRequest {
				req := signLogin(t, key, testChainID, grantStart)
				req.Signature = req.Signature[:10]
				return req
			},
			wantErr: ErrChallengeSignature,
		},
		{
			name: "no signature",
			req: func() models.LoginRequest {
				req := signLogin(t, key, testChainID, grantStart)
				req.Signature = nil
				return req
			},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(t)
			_, err := svc.Login(context.Background(), tt.req())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── ParseToken ──

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ForeignIssuer(t *testing.T) {
	svc := newTestAuthService(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), signLogin(t, key, testChainID, grantStart))
	require.NoError(t, err)

	svc.tokenIssuer = "someone-else"
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
