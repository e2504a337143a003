package fhe

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

type memoryStore struct {
	mu          sync.RWMutex
	ciphertexts map[Handle]Ciphertext
	acl         map[Grant]struct{}
}

// NewMemoryStore keeps ciphertexts and grants in process memory. Used by
// in-process sqlite ledgers and by tests.
func NewMemoryStore() Store {
	return &memoryStore{
		ciphertexts: make(map[Handle]Ciphertext),
		acl:         make(map[Grant]struct{}),
	}
}

func (m *memoryStore) PutCiphertext(_ context.Context, ct Ciphertext) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ciphertexts[ct.Handle]; !ok {
		m.ciphertexts[ct.Handle] = ct
	}
	return nil
}

func (m *memoryStore) GetCiphertext(_ context.Context, h Handle) (Ciphertext, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ct, ok := m.ciphertexts[h]
	if !ok {
		return Ciphertext{}, models.Errorf(models.ErrUnknownHandle, "%s", h.Hex())
	}
	return ct, nil
}

func (m *memoryStore) Grant(_ context.Context, grants []Grant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, g := range grants {
		m.acl[g] = struct{}{}
	}
	return nil
}

func (m *memoryStore) IsAllowed(_ context.Context, h Handle, account common.Address) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.acl[Grant{Handle: h, Account: account}]
	return ok, nil
}
