package authz

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	kc "github.com/TessVincent/prismhealth/internal/crypto"
)

// KeyFile is the on-disk form of an account key: the secp256k1 key sealed
// with a password-derived key. The address is bound into the seal.
type KeyFile struct {
	Address common.Address `json:"address"`
	Salt    hexutil.Bytes  `json:"salt"`
	Sealed  hexutil.Bytes  `json:"sealed"`
}

// SaveKey writes key to path sealed under password. An existing file is
// never overwritten.
func SaveKey(path, password string, key *ecdsa.PrivateKey, keyChain kc.KeyChain) (common.Address, error) {
	if key == nil {
		return common.Address{}, ErrNoSigningKey
	}
	address := crypto.PubkeyToAddress(key.PublicKey)

	salt, err := keyChain.GenerateSalt()
	if err != nil {
		return common.Address{}, fmt.Errorf("generate salt: %w", err)
	}
	sealed, err := keyChain.Seal(crypto.FromECDSA(key), keyChain.DeriveKey(password, salt), address.Bytes())
	if err != nil {
		return common.Address{}, fmt.Errorf("seal key: %w", err)
	}

	data, err := json.MarshalIndent(KeyFile{Address: address, Salt: salt, Sealed: sealed}, "", "  ")
	if err != nil {
		return common.Address{}, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return common.Address{}, fmt.Errorf("create key file: %w", err)
	}
	defer f.Close()

	if _, err = f.Write(data); err != nil {
		return common.Address{}, fmt.Errorf("write key file: %w", err)
	}
	return address, nil
}

// LoadKey opens the key file at path with password.
func LoadKey(path, password string, keyChain kc.KeyChain) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	var file KeyFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode key file: %w", err)
	}

	raw, err := keyChain.Open(file.Sealed, keyChain.DeriveKey(password, file.Salt), file.Address.Bytes())
	if errors.Is(err, kc.ErrOpenFailed) {
		return nil, ErrWrongPassword
	}
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}

	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("decode account key: %w", err)
	}
	if crypto.PubkeyToAddress(key.PublicKey) != file.Address {
		return nil, fmt.Errorf("key file address %s does not match its key", file.Address.Hex())
	}
	return key, nil
}
