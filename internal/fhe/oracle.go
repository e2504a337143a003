package fhe

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/nacl/box"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

// UserDecrypt releases the plaintext of every requested handle, sealed to
// the grant's public key. The grant must be signed by the user, valid at the
// current time and cover each handle's contract. Both the user and the
// contract must hold rights on each handle. Any failure releases nothing.
func (c *Coprocessor) UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "Coprocessor.UserDecrypt").
		Str("user", req.UserAddress.Hex()).
		Logger()

	if len(req.Handles) == 0 {
		return models.UserDecryptResponse{}, models.Errorf(models.ErrEmptyField, "no handles requested")
	}
	if len(req.PublicKey) != 32 {
		return models.UserDecryptResponse{}, models.Errorf(models.ErrMalformedGrant, "public key is %d bytes", len(req.PublicKey))
	}
	if req.DurationDays < 1 || req.DurationDays > c.maxDays {
		return models.UserDecryptResponse{}, models.Errorf(models.ErrMalformedGrant, "duration of %d days", req.DurationDays)
	}

	grant := DecryptionRequest{
		PublicKey:      req.PublicKey,
		Contracts:      req.ContractAddresses,
		StartTimestamp: req.StartTimestamp,
		DurationDays:   req.DurationDays,
	}

	now := c.now().Unix()
	if now < grant.StartTimestamp {
		return models.UserDecryptResponse{}, models.ErrGrantNotYetValid
	}
	if !grant.ValidAt(now) {
		return models.UserDecryptResponse{}, models.ErrGrantExpired
	}

	digest, err := grant.Hash(c.domain)
	if err != nil {
		return models.UserDecryptResponse{}, err
	}
	signer, err := RecoverSigner(digest, req.Signature)
	if err != nil {
		return models.UserDecryptResponse{}, err
	}
	if signer != req.UserAddress {
		log.Warn().Str("signer", signer.Hex()).Msg("grant signed by another account")
		return models.UserDecryptResponse{}, models.Errorf(models.ErrBadSignature, "grant not signed by %s", req.UserAddress.Hex())
	}

	inGrant := make(map[common.Address]struct{}, len(req.ContractAddresses))
	for _, a := range req.ContractAddresses {
		inGrant[a] = struct{}{}
	}

	var pub [32]byte
	copy(pub[:], req.PublicKey)

	sealed := make(map[common.Hash]hexutil.Bytes, len(req.Handles))
	for _, pair := range req.Handles {
		if _, ok := inGrant[pair.ContractAddress]; !ok {
			return models.UserDecryptResponse{}, models.Errorf(models.ErrContractNotInGrant, "%s", pair.ContractAddress.Hex())
		}
		for _, account := range []common.Address{req.UserAddress, pair.ContractAddress} {
			ok, err := c.store.IsAllowed(ctx, pair.Handle, account)
			if err != nil {
				return models.UserDecryptResponse{}, fmt.Errorf("check access: %w", err)
			}
			if !ok {
				return models.UserDecryptResponse{}, models.Errorf(models.ErrMissingRights, "%s has no rights on %s", account.Hex(), pair.Handle.Hex())
			}
		}

		t, v, err := c.reveal(ctx, pair.Handle)
		if err != nil {
			return models.UserDecryptResponse{}, err
		}
		out, err := box.SealAnonymous(nil, encodeValue(t, v), &pub, rand.Reader)
		if err != nil {
			return models.UserDecryptResponse{}, fmt.Errorf("seal to grant key: %w", err)
		}
		sealed[pair.Handle] = out
	}

	log.Debug().Int("handles", len(sealed)).Msg("released sealed plaintexts")
	return models.UserDecryptResponse{Sealed: sealed}, nil
}
