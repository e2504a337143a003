package fhe

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

const maxInputsPerBatch = 255

// EncryptInputs issues fresh random handles, so encrypting the same value
// twice yields two unrelated ciphertexts.
func (c *Coprocessor) EncryptInputs(ctx context.Context, contract, user common.Address, values []uint64, types []Type) (InputBatch, error) {
	log := logger.FromContext(ctx)

	if len(values) == 0 || len(values) != len(types) || len(values) > maxInputsPerBatch {
		return InputBatch{}, models.Errorf(models.ErrEmptyField, "%d values with %d types", len(values), len(types))
	}

	seed := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return InputBatch{}, fmt.Errorf("read input seed: %w", err)
	}

	handles := make([]Handle, len(values))
	for i, v := range values {
		t := types[i]
		if !t.Valid() {
			return InputBatch{}, fmt.Errorf("%w: %s", ErrUnsupportedWidth, t)
		}
		if v > t.Max() {
			return InputBatch{}, models.Errorf(models.ErrValueOutOfDomain, "input %d: %d does not fit %s", i, v, t)
		}

		digest := crypto.Keccak256Hash(seed, []byte{byte(i)}, contract.Bytes(), user.Bytes())
		handles[i] = stamp(digest, t)
		if err := c.put(ctx, handles[i], t, v); err != nil {
			log.Err(err).Str("func", "Coprocessor.EncryptInputs").Int("input", i).Msg("failed to store input ciphertext")
			return InputBatch{}, err
		}
	}

	return InputBatch{Handles: handles, Proof: c.encodeProof(contract, user, handles)}, nil
}

func (c *Coprocessor) FromExternal(ctx context.Context, in models.ExternalInput, contract, user common.Address, want Type) (Handle, error) {
	handles, mac, err := decodeProof(in.Proof)
	if err != nil {
		return Handle{}, err
	}
	if !hmac.Equal(mac, c.proofMAC(contract, user, handles)) {
		return Handle{}, models.Errorf(models.ErrInvalidInputProof, "proof was not issued for this contract and user")
	}

	covered := false
	for _, h := range handles {
		if h == in.Handle {
			covered = true
			break
		}
	}
	if !covered {
		return Handle{}, models.Errorf(models.ErrInvalidInputProof, "handle %s is not covered by the proof", in.Handle.Hex())
	}

	if got := TypeOf(in.Handle); got != want {
		return Handle{}, models.Errorf(models.ErrInvalidHandleType, "got %s, want %s", got, want)
	}
	if _, err := c.store.GetCiphertext(ctx, in.Handle); err != nil {
		return Handle{}, err
	}

	return in.Handle, nil
}

// Proof layout: count (1 byte) || handles (count*32) || HMAC-SHA256 (32).
func (c *Coprocessor) encodeProof(contract, user common.Address, handles []Handle) []byte {
	proof := make([]byte, 0, 1+len(handles)*32+sha256.Size)
	proof = append(proof, byte(len(handles)))
	for _, h := range handles {
		proof = append(proof, h.Bytes()...)
	}
	return append(proof, c.proofMAC(contract, user, handles)...)
}

func (c *Coprocessor) proofMAC(contract, user common.Address, handles []Handle) []byte {
	mac := hmac.New(sha256.New, c.proofKey)
	mac.Write([]byte("prismhealth/input"))
	mac.Write(contract.Bytes())
	mac.Write(user.Bytes())
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(handles)))
	mac.Write(n[:])
	for _, h := range handles {
		mac.Write(h.Bytes())
	}
	return mac.Sum(nil)
}

func decodeProof(proof []byte) ([]Handle, []byte, error) {
	if len(proof) < 1+sha256.Size {
		return nil, nil, models.Errorf(models.ErrInvalidInputProof, "proof too short")
	}
	n := int(proof[0])
	if n == 0 || len(proof) != 1+n*32+sha256.Size {
		return nil, nil, models.Errorf(models.ErrInvalidInputProof, "proof length does not match %d handles", n)
	}

	handles := make([]Handle, n)
	for i := range handles {
		handles[i] = common.BytesToHash(proof[1+i*32 : 1+(i+1)*32])
	}
	return handles, proof[1+n*32:], nil
}
