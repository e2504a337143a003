package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain derives symmetric keys from secrets and seals small blobs with
// them. It knows nothing about the network, the ledger or accounts.
//
// Two callers use it:
//
//	coprocessor: key = DeriveKey(engineSecret, salt); Seal(value, key, handle)
//	prismctl:    key = DeriveKey(password, salt);     Seal(accountKey, key, address)
type KeyChain interface {
	// GenerateSalt returns 16 random bytes. Salts are not secret.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches secret into a 32-byte AES key with Argon2id.
	DeriveKey(secret string, salt []byte) []byte

	// Seal encrypts plaintext with AES-GCM, binding aad. The result is
	// nonce || ciphertext.
	Seal(plaintext, key, aad []byte) ([]byte, error)

	// Open reverses Seal. It fails when key or aad differ from the ones used
	// to seal.
	Open(sealed, key, aad []byte) ([]byte, error)
}
