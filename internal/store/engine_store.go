package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

// engineStore persists the coprocessor's ciphertexts and access list. It
// writes outside ledger transactions: an operator result may exist before
// the call producing it commits, but stays unreadable until granted.
type engineStore struct {
	db      *DB
	builder sq.StatementBuilderType
}

// NewEngineStore returns a fhe.Store backed by db.
func NewEngineStore(db *DB) fhe.Store {
	return &engineStore{db: db, builder: db.builder}
}

func (s *engineStore) PutCiphertext(ctx context.Context, ct fhe.Ciphertext) error {
	_, err := execStatement(ctx, s.db, "engineStore.PutCiphertext", s.builder.
		Insert(tableCiphertexts).
		Columns("handle", "type", "sealed").
		Values(ct.Handle, int(ct.Type), ct.Sealed).
		Suffix("ON CONFLICT (handle) DO NOTHING"))
	return err
}

func (s *engineStore) GetCiphertext(ctx context.Context, h fhe.Handle) (fhe.Ciphertext, error) {
	ct := fhe.Ciphertext{Handle: h}
	var typ int
	err := queryRow(ctx, s.db, "engineStore.GetCiphertext", s.builder.
		Select("type", "sealed").
		From(tableCiphertexts).
		Where("handle = ?", h),
		&typ, &ct.Sealed)
	if IsNotFound(err) {
		return fhe.Ciphertext{}, models.Errorf(models.ErrUnknownHandle, "%s", h.Hex())
	}
	if err != nil {
		return fhe.Ciphertext{}, err
	}
	ct.Type = fhe.Type(typ)
	return ct, nil
}

// Grant inserts all grants in one transaction.
func (s *engineStore) Grant(ctx context.Context, grants []fhe.Grant) error {
	if len(grants) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "engineStore.Grant").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	insert := s.builder.Insert(tableACL).Columns("handle", "account")
	for _, g := range grants {
		insert = insert.Values(g.Handle, g.Account)
	}
	if _, err := execStatement(ctx, tx, "engineStore.Grant", insert.Suffix("ON CONFLICT (handle, account) DO NOTHING")); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *engineStore) IsAllowed(ctx context.Context, h fhe.Handle, account common.Address) (bool, error) {
	n, err := countRows(ctx, s.db, "engineStore.IsAllowed", s.builder, tableACL, sq.And{
		sq.Expr("handle = ?", h),
		sq.Expr("account = ?", account),
	})
	return n > 0, err
}
