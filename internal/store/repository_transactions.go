package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

type transactionRepository struct {
	q       querier
	builder sq.StatementBuilderType
}

// SaveTransaction inserts tx and its logs. tx.BlockNumber is ignored: new
// transactions are always pending.
func (r *transactionRepository) SaveTransaction(ctx context.Context, tx models.Transaction) error {
	_, err := execStatement(ctx, r.q, "transactionRepository.SaveTransaction", r.builder.
		Insert(tableTransactions).
		Columns(txColumns...).
		Values(tx.Hash, tx.From, tx.To, tx.Method, tx.Status, nil, tx.CreatedAt))
	if err != nil {
		return err
	}

	if len(tx.Logs) == 0 {
		return nil
	}

	insert := r.builder.Insert(tableEventLogs).Columns(logColumns...)
	for i, l := range tx.Logs {
		insert = insert.Values(tx.Hash, i, l.Address, joinTopics(l.Topics), logData(l.Data))
	}
	_, err = execStatement(ctx, r.q, "transactionRepository.SaveTransaction", insert)
	return err
}

// logData maps a nil payload to an empty one; event_logs.data is NOT NULL.
func logData(data []byte) []byte {
	if data == nil {
		return []byte{}
	}
	return data
}

func (r *transactionRepository) GetTransaction(ctx context.Context, hash common.Hash) (models.Transaction, error) {
	const fn = "transactionRepository.GetTransaction"

	var tx models.Transaction
	err := queryRow(ctx, r.q, fn, r.builder.
		Select(txColumns...).
		From(tableTransactions).
		Where("hash = ?", hash),
		&tx.Hash, &tx.From, &tx.To, &tx.Method, &tx.Status, &tx.BlockNumber, &tx.CreatedAt)
	if err != nil {
		return models.Transaction{}, err
	}

	query, args, err := r.builder.
		Select("log_index", "address", "topics", "data").
		From(tableEventLogs).
		Where("tx_hash = ?", hash).
		OrderBy("log_index").
		ToSql()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("tx_hash", hash.Hex()).Msg("failed to query logs")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tx.Logs = make([]models.Log, 0, 2)
	for rows.Next() {
		var (
			l      models.Log
			topics []byte
			data   []byte
		)
		if err := rows.Scan(&l.Index, &l.Address, &topics, &data); err != nil {
			return models.Transaction{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		l.Topics = splitTopics(topics)
		l.Data = data
		l.TxHash = tx.Hash
		l.BlockNumber = tx.BlockNumber
		tx.Logs = append(tx.Logs, l)
	}
	if err := rows.Err(); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tx, nil
}

func (r *transactionRepository) SealPending(ctx context.Context, sealedAt int64) (models.Block, error) {
	const fn = "transactionRepository.SealPending"

	var last uint64
	if err := queryRow(ctx, r.q, fn, r.builder.Select("COALESCE(MAX(number), 0)").From(tableBlocks), &last); err != nil {
		return models.Block{}, err
	}

	res, err := execStatement(ctx, r.q, fn, r.builder.
		Update(tableTransactions).
		Set("block_number", last+1).
		Where("block_number IS NULL"))
	if err != nil {
		return models.Block{}, err
	}
	sealed, err := res.RowsAffected()
	if err != nil {
		return models.Block{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if sealed == 0 {
		return models.Block{}, nil
	}

	block := models.Block{Number: last + 1, Transactions: int(sealed), SealedAt: sealedAt}
	if _, err := execStatement(ctx, r.q, fn, r.builder.
		Insert(tableBlocks).
		Columns("number", "tx_count", "sealed_at").
		Values(block.Number, block.Transactions, block.SealedAt)); err != nil {
		return models.Block{}, err
	}

	return block, nil
}

func joinTopics(topics []common.Hash) []byte {
	out := make([]byte, 0, len(topics)*common.HashLength)
	for _, t := range topics {
		out = append(out, t.Bytes()...)
	}
	return out
}

func splitTopics(raw []byte) []common.Hash {
	topics := make([]common.Hash, 0, len(raw)/common.HashLength)
	for i := 0; i+common.HashLength <= len(raw); i += common.HashLength {
		topics = append(topics, common.BytesToHash(raw[i:i+common.HashLength]))
	}
	return topics
}
