package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/oklog/ulid/v2"
)

// TxHash derives a transaction hash from a fresh ULID, the method name and
// the call data, so two identical calls still get distinct hashes.
func TxHash(method string, calldata []byte) common.Hash {
	id := ulid.Make()
	return crypto.Keccak256Hash(id[:], []byte(method), calldata)
}
