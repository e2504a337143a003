package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/ledger"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

// call collects what one ledger transaction produces: its event logs and the
// decryption rights to hand out once it commits. A fresh call is built for
// every attempt of the unit of work.
type call struct {
	ctx      context.Context
	owner    common.Address
	contract common.Address
	txHash   common.Hash
	now      int64
	repos    store.Repositories
	engine   fhe.Engine

	logs   []models.Log
	grants []fhe.Grant
}

func (c *call) emit(name string, args ...interface{}) error {
	l, err := ledger.EncodeEvent(c.contract, name, args...)
	if err != nil {
		return err
	}
	c.logs = append(c.logs, l)
	return nil
}

// allow grants the caller and the ledger contract rights on handles.
func (c *call) allow(handles ...common.Hash) {
	for _, h := range handles {
		c.grants = append(c.grants,
			fhe.Grant{Handle: h, Account: c.owner},
			fhe.Grant{Handle: h, Account: c.contract},
		)
	}
}

// input accepts an externally encrypted value for this caller and contract.
func (c *call) input(in models.ExternalInput, want fhe.Type) (common.Hash, error) {
	return c.engine.FromExternal(c.ctx, in, c.contract, c.owner, want)
}

// executor runs mutating ledger calls.
type executor struct {
	uow      store.UnitOfWork
	engine   fhe.Engine
	contract common.Address
	now      func() time.Time
}

func newExecutor(uow store.UnitOfWork, engine fhe.Engine, contract common.Address) *executor {
	return &executor{uow: uow, engine: engine, contract: contract, now: time.Now}
}

// execute runs fn in one database transaction together with the transaction
// row and its logs. Grants are applied only after the commit. A simulated
// call is rolled back, grants nothing and returns the zero hash.
func (e *executor) execute(ctx context.Context, owner common.Address, method string, args any, opts models.CallOptions, fn func(*call) error) (common.Hash, error) {
	log := logger.FromContext(ctx)

	calldata, err := json.Marshal(args)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode call data: %w", err)
	}

	var hash common.Hash
	if !opts.Simulate {
		hash = ledger.TxHash(method, calldata)
	}

	var done *call
	err = e.uow.RunInTx(ctx, opts.Simulate, func(repos store.Repositories) error {
		c := &call{
			ctx:      ctx,
			owner:    owner,
			contract: e.contract,
			txHash:   hash,
			now:      e.now().Unix(),
			repos:    repos,
			engine:   e.engine,
		}
		if err := fn(c); err != nil {
			return err
		}
		done = c

		if opts.Simulate {
			return nil
		}
		for i := range c.logs {
			c.logs[i].TxHash = hash
			c.logs[i].Index = uint(i)
		}
		return repos.Transactions.SaveTransaction(ctx, models.Transaction{
			Hash:      hash,
			From:      owner,
			To:        e.contract,
			Method:    method,
			Status:    models.TxStatusSuccess,
			CreatedAt: c.now,
			Logs:      c.logs,
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "executor.execute").
			Str("method", method).
			Str("owner", owner.Hex()).
			Bool("simulate", opts.Simulate).
			Msg("ledger call failed")
		return common.Hash{}, err
	}

	if opts.Simulate {
		return common.Hash{}, nil
	}

	if err := e.engine.Allow(ctx, done.grants...); err != nil {
		log.Err(err).
			Str("func", "executor.execute").
			Str("tx_hash", hash.Hex()).
			Msg("failed to apply grants after commit")
		return hash, fmt.Errorf("%w: %w", ErrGrantsNotApplied, err)
	}

	log.Info().
		Str("method", method).
		Str("tx_hash", hash.Hex()).
		Int("logs", len(done.logs)).
		Int("grants", len(done.grants)).
		Msg("transaction committed")
	return hash, nil
}

func submission[T any](hash common.Hash, opts models.CallOptions, result T) models.Submission[T] {
	return models.Submission[T]{TxHash: hash, Simulated: opts.Simulate, Result: result}
}
