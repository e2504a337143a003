package fhe

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/TessVincent/prismhealth/internal/config"
	kc "github.com/TessVincent/prismhealth/internal/crypto"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

var sealSalt = crypto.Keccak256([]byte("prismhealth/coprocessor/seal"))[:16]

// Coprocessor implements Engine. Values are kept sealed with AES-GCM under a
// key derived from the engine secret; every seal is bound to its handle.
type Coprocessor struct {
	store    Store
	keyChain kc.KeyChain
	sealKey  []byte
	proofKey []byte
	domain   models.OracleDomain
	maxDays  int64
	now      func() time.Time
	logger   *logger.Logger
}

// NewCoprocessor derives the sealing key from cfg.Secret once, at startup.
func NewCoprocessor(store Store, keyChain kc.KeyChain, cfg config.Engine, domain models.OracleDomain, logger *logger.Logger) *Coprocessor {
	maxDays := int64(cfg.MaxGrantDays)
	if maxDays <= 0 {
		maxDays = 365
	}

	return &Coprocessor{
		store:    store,
		keyChain: keyChain,
		sealKey:  keyChain.DeriveKey(cfg.Secret, sealSalt),
		proofKey: []byte(cfg.InputProofKey),
		domain:   domain,
		maxDays:  maxDays,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock replaces the wall clock used to check grant validity.
func (c *Coprocessor) WithClock(now func() time.Time) *Coprocessor {
	c.now = now
	return c
}

// Domain is the EIP-712 domain the oracle verifies grants under.
func (c *Coprocessor) Domain() models.OracleDomain {
	return c.domain
}

func (c *Coprocessor) TrivialEncrypt(ctx context.Context, value uint64, t Type) (Handle, error) {
	if !t.Valid() {
		return Handle{}, fmt.Errorf("%w: %s", ErrInvalidOperands, t)
	}
	if value > t.Max() {
		return Handle{}, models.Errorf(models.ErrValueOutOfDomain, "%d does not fit %s", value, t)
	}

	var buf [9]byte
	buf[0] = byte(t)
	binary.BigEndian.PutUint64(buf[1:], value)
	h := stamp(crypto.Keccak256Hash([]byte("trivial"), buf[:]), t)

	if err := c.put(ctx, h, t, value); err != nil {
		return Handle{}, err
	}
	return h, nil
}

func (c *Coprocessor) Eval(ctx context.Context, op Op, args ...Arg) (Handle, error) {
	in := make([]operand, len(args))
	for i, arg := range args {
		in[i] = operand{kind: arg.kind, value: arg.scalar}
		if arg.kind != argHandle {
			continue
		}
		t, v, err := c.reveal(ctx, arg.handle)
		if err != nil {
			return Handle{}, err
		}
		in[i].typ, in[i].value = t, v
	}

	value, t, err := apply(op, in)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Coprocessor.Eval").
			Str("op", op.String()).
			Msg("operator rejected its operands")
		return Handle{}, err
	}

	h := stamp(resultDigest(op, args, t), t)
	if err := c.put(ctx, h, t, value); err != nil {
		return Handle{}, err
	}
	return h, nil
}

func (c *Coprocessor) Allow(ctx context.Context, grants ...Grant) error {
	if len(grants) == 0 {
		return nil
	}
	if err := c.store.Grant(ctx, grants); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Coprocessor.Allow").
			Int("grants", len(grants)).
			Msg("failed to store grants")
		return fmt.Errorf("store grants: %w", err)
	}
	return nil
}

func (c *Coprocessor) IsAllowed(ctx context.Context, h Handle, account common.Address) (bool, error) {
	return c.store.IsAllowed(ctx, h, account)
}

// resultDigest hashes everything that determines an operator result, so the
// same computation over the same ciphertexts always yields the same handle.
func resultDigest(op Op, args []Arg, t Type) common.Hash {
	buf := make([]byte, 0, 2+len(args)*33)
	buf = append(buf, byte(op))
	for _, arg := range args {
		buf = append(buf, byte(arg.kind))
		if arg.kind == argHandle {
			buf = append(buf, arg.handle.Bytes()...)
			continue
		}
		buf = binary.BigEndian.AppendUint64(buf, arg.scalar)
	}
	buf = append(buf, byte(t))
	return crypto.Keccak256Hash(buf)
}

func (c *Coprocessor) put(ctx context.Context, h Handle, t Type, value uint64) error {
	var plain [8]byte
	binary.BigEndian.PutUint64(plain[:], value)

	sealed, err := c.keyChain.Seal(plain[:], c.sealKey, h.Bytes())
	if err != nil {
		return fmt.Errorf("seal ciphertext: %w", err)
	}

	return c.store.PutCiphertext(ctx, Ciphertext{Handle: h, Type: t, Sealed: sealed})
}

func (c *Coprocessor) reveal(ctx context.Context, h Handle) (Type, uint64, error) {
	ct, err := c.store.GetCiphertext(ctx, h)
	if err != nil {
		return 0, 0, err
	}

	plain, err := c.keyChain.Open(ct.Sealed, c.sealKey, h.Bytes())
	if err != nil || len(plain) != 8 {
		return 0, 0, fmt.Errorf("%w: %s", ErrCorruptValue, h.Hex())
	}

	return ct.Type, binary.BigEndian.Uint64(plain), nil
}
