package authz

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// Keypair is the ephemeral NaCl box keypair a grant is bound to. The oracle
// seals every released value to Public; only the holder of the private half
// can open it.
type Keypair struct {
	Public  *[32]byte
	private *[32]byte
}

func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return &Keypair{Public: pub, private: priv}, nil
}

// zero wipes the private half. The keypair is useless afterwards.
func (k *Keypair) zero() {
	if k.private == nil {
		return
	}
	for i := range k.private {
		k.private[i] = 0
	}
	k.private = nil
}
