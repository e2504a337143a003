// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authz

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

// GrantDurationDays is how long a freshly signed grant stays valid.
const GrantDurationDays = 365

type State int

const (
	StateInit State = iota
	StateKeypairGenerated
	StateGrantSigned
	StateGrantConsumed
	StateFailed
)

var stateNames = [...]string{
	StateInit:             "init",
	StateKeypairGenerated: "keypair_generated",
	StateGrantSigned:      "grant_signed",
	StateGrantConsumed:    "grant_consumed",
	StateFailed:           "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Oracle releases sealed plaintexts against a signed grant.
type Oracle interface {
	UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error)
}

// Authorizer produces decryption grants for one account under one oracle
// domain.
type Authorizer struct {
	domain models.OracleDomain
	signer Signer
	now    func() time.Time
	logger *logger.Logger
}

func NewAuthorizer(domain models.OracleDomain, signer Signer, logger *logger.Logger) *Authorizer {
	return &Authorizer{domain: domain, signer: signer, now: time.Now, logger: logger}
}

// WithClock replaces the clock used for the grant start and validity checks.
func (a *Authorizer) WithClock(now func() time.Time) *Authorizer {
	a.now = now
	return a
}

// NewGrant generates a fresh keypair and has the signer sign a grant over
// contracts. On failure the grant is nil and the error is a *FailedAttempt.
func (a *Authorizer) NewGrant(ctx context.Context, contracts []string) (*Grant, error) {
	keypair, err := GenerateKeypair()
	if err != nil {
		return nil, a.fail(StateInit, err)
	}
	return a.SignGrant(ctx, contracts, keypair)
}

// SignGrant signs a grant bound to an existing keypair. The keypair is wiped
// if signing fails.
func (a *Authorizer) SignGrant(ctx context.Context, contracts []string, keypair *Keypair) (*Grant, error) {
	addresses, err := normalizeContracts(contracts)
	if err != nil {
		keypair.zero()
		return nil, a.fail(StateKeypairGenerated, err)
	}

	req := fhe.DecryptionRequest{
		PublicKey:      keypair.Public[:],
		Contracts:      addresses,
		StartTimestamp: a.now().Unix(),
		DurationDays:   GrantDurationDays,
	}

	digest, err := req.Hash(a.domain)
	if err != nil {
		keypair.zero()
		return nil, a.fail(StateKeypairGenerated, err)
	}

	sig, err := a.signer.SignTypedData(ctx, digest)
	if err != nil {
		keypair.zero()
		return nil, a.fail(StateKeypairGenerated, err)
	}

	a.logger.Debug().
		Str("func", "Authorizer.SignGrant").
		Str("user", a.signer.Address().Hex()).
		Int("contracts", len(addresses)).
		Int64("start", req.StartTimestamp).
		Msg("decryption grant signed")

	return &Grant{
		User:           a.signer.Address(),
		PublicKey:      req.PublicKey,
		Contracts:      addresses,
		StartTimestamp: req.StartTimestamp,
		DurationDays:   req.DurationDays,
		Signature:      sig,
		state:          StateGrantSigned,
		keypair:        keypair,
		now:            a.now,
	}, nil
}

func (a *Authorizer) fail(reached State, reason error) error {
	a.logger.Warn().
		Str("func", "Authorizer.fail").
		Str("reached", reached.String()).
		Err(reason).
		Msg("decryption grant attempt failed")
	return &FailedAttempt{Reached: reached, Reason: reason}
}

// normalizeContracts checksums, de-duplicates and sorts addresses.
func normalizeContracts(contracts []string) ([]common.Address, error) {
	if len(contracts) == 0 {
		return nil, models.Errorf(models.ErrEmptyField, "grant covers no contracts")
	}

	seen := make(map[common.Address]struct{}, len(contracts))
	out := make([]common.Address, 0, len(contracts))
	for _, raw := range contracts {
		raw = strings.TrimSpace(raw)
		if !common.IsHexAddress(raw) {
			return nil, models.Errorf(models.ErrInvalidAddress, "%q", raw)
		}
		addr := common.HexToAddress(raw)
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}

	slices.SortFunc(out, func(x, y common.Address) int { return x.Cmp(y) })
	return out, nil
}

// Grant is a signed, single-use decryption authorization. The private half
// of its keypair never leaves the process and is wiped when the grant is
// consumed.
type Grant struct {
	User           common.Address   `json:"userAddress"`
	PublicKey      hexutil.Bytes    `json:"publicKey"`
	Contracts      []common.Address `json:"contractAddresses"`
	StartTimestamp int64            `json:"startTimestamp"`
	DurationDays   int64            `json:"durationDays"`
	Signature      hexutil.Bytes    `json:"signature"`

	mu      sync.Mutex
	state   State
	keypair *Keypair
	now     func() time.Time
}

// IsValid reports whether now is before the end of the validity window.
func (g *Grant) IsValid(now time.Time) bool {
	return now.Unix() < g.StartTimestamp+g.DurationDays*fhe.SecondsPerDay
}

func (g *Grant) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Grant) spent() bool {
	return g.state == StateGrantConsumed || g.state == StateFailed
}

func (g *Grant) covers(contract common.Address) bool {
	return slices.Contains(g.Contracts, contract)
}

// Consume spends the grant on one oracle round trip and opens every released
// value. The grant ends in StateGrantConsumed on success and StateFailed
// otherwise; either way it is spent and a second call fails with
// models.ErrGrantConsumed.
func (g *Grant) Consume(ctx context.Context, oracle Oracle, handles []models.HandleContractPair) (_ fhe.Values, err error) {
	if len(handles) == 0 {
		return nil, models.Errorf(models.ErrEmptyField, "no handles to decrypt")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.spent() {
		return nil, models.ErrGrantConsumed
	}
	defer func() {
		g.keypair.zero()
		if err != nil {
			g.state = StateFailed
			return
		}
		g.state = StateGrantConsumed
	}()

	if !g.IsValid(g.now()) {
		return nil, models.ErrGrantExpired
	}
	for _, pair := range handles {
		if !g.covers(pair.ContractAddress) {
			return nil, models.Errorf(models.ErrContractNotInGrant, "%s", pair.ContractAddress.Hex())
		}
	}

	resp, err := oracle.UserDecrypt(ctx, models.UserDecryptRequest{
		Handles:           handles,
		PublicKey:         g.PublicKey,
		Signature:         g.Signature,
		ContractAddresses: g.Contracts,
		UserAddress:       g.User,
		StartTimestamp:    g.StartTimestamp,
		DurationDays:      g.DurationDays,
	})
	if err != nil {
		return nil, fmt.Errorf("user decrypt: %w", err)
	}

	values := make(fhe.Values, len(handles))
	for _, pair := range handles {
		sealed, ok := resp.Sealed[pair.Handle]
		if !ok {
			return nil, fmt.Errorf("%w: nothing released for %s", fhe.ErrCorruptValue, pair.Handle.Hex())
		}
		v, err := fhe.OpenSealed(sealed, g.keypair.Public, g.keypair.private)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", pair.Handle.Hex(), err)
		}
		values[pair.Handle] = v
	}
	return values, nil
}

// Decrypt is the usual one-shot path: a fresh grant over contracts, spent
// immediately on handles.
func (a *Authorizer) Decrypt(ctx context.Context, oracle Oracle, contracts []string, handles []models.HandleContractPair) (fhe.Values, error) {
	grant, err := a.NewGrant(ctx, contracts)
	if err != nil {
		return nil, err
	}
	return grant.Consume(ctx, oracle, handles)
}
