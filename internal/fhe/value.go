package fhe

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// Value is one decrypted plaintext.
type Value struct {
	Type  Type
	Value uint64
}

func (v Value) Bool() bool { return v.Value != 0 }

func (v Value) String() string {
	if v.Type == Bool {
		return fmt.Sprintf("%t", v.Bool())
	}
	return fmt.Sprintf("%d", v.Value)
}

// Values maps each requested handle to its plaintext. Lookups are exact.
type Values map[Handle]Value

func encodeValue(t Type, v uint64) []byte {
	out := make([]byte, 9)
	out[0] = byte(t)
	binary.BigEndian.PutUint64(out[1:], v)
	return out
}

// OpenSealed decrypts one oracle answer with the grant's keypair.
func OpenSealed(sealed []byte, publicKey, privateKey *[32]byte) (Value, error) {
	plain, ok := box.OpenAnonymous(nil, sealed, publicKey, privateKey)
	if !ok || len(plain) != 9 {
		return Value{}, ErrCorruptValue
	}
	return Value{Type: Type(plain[0]), Value: binary.BigEndian.Uint64(plain[1:])}, nil
}
