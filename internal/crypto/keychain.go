// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrSealedTooShort is returned by Open when the blob cannot even hold
	// the GCM nonce.
	ErrSealedTooShort = errors.New("sealed blob too short")
	ErrOpenFailed     = errors.New("failed to open sealed blob")
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters. The node derives its sealing key once at
	// startup; prismctl derives a key per unlock of the key file.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // AES-256
	}
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChain]. It stretches secret and salt into a
// 256-bit key with Argon2id using the parameters stored in the receiver.
//
// Parameters:
//
//	secret - the engine secret on the node, the account password in prismctl
//	salt   - random salt stored next to whatever the key seals
//
// Returns:
//
//	[]byte - a 32-byte key suitable for [keyChain.Seal]
//
// Example usage:
//
//	key := keyChain.DeriveKey(password, file.Salt)
func (k *keyChain) DeriveKey(secret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(secret),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Seal implements [KeyChain]. It encrypts plaintext with AES-256-GCM under
// key and binds aad into the authentication tag. A fresh random nonce is
// prepended to the ciphertext: blob = nonce || ciphertext.
//
// Parameters:
//
//	plaintext - the bytes to protect (an encoded value or an account key)
//	key       - a 32-byte key from [keyChain.DeriveKey]
//	aad       - data the blob is bound to (a ciphertext handle or an address)
//
// Returns:
//
//	[]byte - the sealed blob
//	error  - non-nil if the key is malformed or the nonce read fails
//
// Example usage:
//
//	sealed, err := keyChain.Seal(plain[:], sealKey, handle.Bytes())
func (k *keyChain) Seal(plaintext, key, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, aad), nil
}

// Open implements [KeyChain]. It splits the nonce off a blob produced by
// [keyChain.Seal] and decrypts the rest with key, checking aad.
//
// Parameters:
//
//	sealed - the blob returned by Seal
//	key    - the key used to seal
//	aad    - the data used to seal
//
// Returns:
//
//	[]byte - the plaintext
//	error  - [ErrSealedTooShort] for truncated blobs, [ErrOpenFailed] when the
//	         key or aad differ or the blob was tampered with
//
// Example usage:
//
//	raw, err := keyChain.Open(file.Sealed, key, file.Address.Bytes())
//	if errors.Is(err, crypto.ErrOpenFailed) {
//	    // wrong password
//	}
func (k *keyChain) Open(sealed, key, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrSealedTooShort
	}

	plaintext, err := gcm.Open(nil, sealed[:nonceSize], sealed[nonceSize:], aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return plaintext, nil
}

// newGCM builds an AES-GCM AEAD for key. AES picks the variant from the key
// length, so a 32-byte key gives AES-256.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
