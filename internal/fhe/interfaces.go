// Package fhe is the encryption-engine capability the ledger computes through.
//
// The ledger never sees plaintext: it appends handles, asks the engine to
// evaluate operators over them, and grants accounts the right to have a handle
// decrypted. Plaintext only leaves the engine sealed to the public key of a
// signed, time-boxed decryption grant.
package fhe

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fhe_mock.go -package=mock

// Engine is the capability interface consumed by the ledger and the relayer.
type Engine interface {
	// EncryptInputs encrypts values for use by user against contract and
	// returns their handles with one proof of valid encryption.
	EncryptInputs(ctx context.Context, contract, user common.Address, values []uint64, types []Type) (InputBatch, error)
	// FromExternal checks an externally supplied handle against its proof and
	// expected type and returns it for use in computations.
	FromExternal(ctx context.Context, in models.ExternalInput, contract, user common.Address, want Type) (Handle, error)
	// TrivialEncrypt turns a public constant into a ciphertext.
	TrivialEncrypt(ctx context.Context, value uint64, t Type) (Handle, error)
	// Eval applies op to args. Result handles are deterministic in (op, args).
	Eval(ctx context.Context, op Op, args ...Arg) (Handle, error)
	// Allow applies all grants or none.
	Allow(ctx context.Context, grants ...Grant) error
	IsAllowed(ctx context.Context, h Handle, account common.Address) (bool, error)
	// UserDecrypt is the decryption oracle.
	UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error)
}

// Store persists ciphertexts and the access list.
type Store interface {
	// PutCiphertext is idempotent: storing a handle twice keeps the first copy.
	PutCiphertext(ctx context.Context, ct Ciphertext) error
	// GetCiphertext returns models.ErrUnknownHandle for unknown handles.
	GetCiphertext(ctx context.Context, h Handle) (Ciphertext, error)
	// Grant stores all grants atomically.
	Grant(ctx context.Context, grants []Grant) error
	IsAllowed(ctx context.Context, h Handle, account common.Address) (bool, error)
}
