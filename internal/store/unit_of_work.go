package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/TessVincent/prismhealth/internal/logger"
)

const maxTxRetries = 2

// RunInTx implements UnitOfWork. A transaction that fails with an error
// the dialect classifies as retryable is run again from scratch, so fn must
// not keep state across invocations.
func (db *DB) RunInTx(ctx context.Context, rollback bool, fn func(Repositories) error) error {
	attempt := func() error {
		err := db.runInTxOnce(ctx, rollback, fn)
		if err != nil && !db.retryable(err) {
			return backoff.Permanent(err)
		}
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "DB.RunInTx").Msg("retrying transaction")
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxTxRetries), ctx)
	return backoff.Retry(attempt, policy)
}

// retryable reports transient driver failures and id races: two appends for
// the same owner and kind that read the same count collide on the primary key.
func (db *DB) retryable(err error) bool {
	if errors.Is(err, ErrDuplicateKey) {
		return true
	}
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

func (db *DB) runInTxOnce(ctx context.Context, rollback bool, fn func(Repositories) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(newRepositories(db, tx)); err != nil {
		return err
	}
	if rollback {
		return nil
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
