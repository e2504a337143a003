package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/models"
)

var txHash = common.HexToHash("0xfeed")

func TestTransactionRepository_SaveTransaction_WithLogs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newRepositories(db, db.DB).Transactions

	tx := models.Transaction{
		Hash: txHash, From: testOwner, To: testOwner, Method: "addHealthRecord", Status: models.TxStatusSuccess, CreatedAt: 1,
		Logs: []models.Log{{Address: testOwner, Topics: []common.Hash{handleA, handleB}, Data: []byte{1, 2}}},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(txHash, testOwner, testOwner, "addHealthRecord", models.TxStatusSuccess, nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_logs")).
		WithArgs(txHash, 0, testOwner, append(handleA.Bytes(), handleB.Bytes()...), []byte{1, 2}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveTransaction(context.Background(), tx))
}

func TestTransactionRepository_SaveTransaction_IndexedOnlyLog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newRepositories(db, db.DB).Transactions

	tx := models.Transaction{
		Hash: txHash, From: testOwner, To: testOwner, Method: "deleteHealthRecord", Status: models.TxStatusSuccess, CreatedAt: 1,
		Logs: []models.Log{{Address: testOwner, Topics: []common.Hash{handleA}}},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(txHash, testOwner, testOwner, "deleteHealthRecord", models.TxStatusSuccess, nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_logs")).
		WithArgs(txHash, 0, testOwner, handleA.Bytes(), []byte{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveTransaction(context.Background(), tx))
}

func TestTransactionRepository_GetTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newRepositories(db, db.DB).Transactions

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE hash = $1")).
		WithArgs(txHash).
		WillReturnRows(sqlmock.NewRows(txColumns).
			AddRow(txHash.Bytes(), testOwner.Bytes(), testOwner.Bytes(), "verifyInRange", int64(1), int64(7), int64(100)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM event_logs WHERE tx_hash = $1 ORDER BY log_index")).
		WithArgs(txHash).
		WillReturnRows(sqlmock.NewRows([]string{"log_index", "address", "topics", "data"}).
			AddRow(int64(0), testOwner.Bytes(), append(handleA.Bytes(), handleB.Bytes()...), []byte{0xff}))

	tx, err := repo.GetTransaction(context.Background(), txHash)
	require.NoError(t, err)

	require.NotNil(t, tx.BlockNumber)
	assert.Equal(t, uint64(7), *tx.BlockNumber)
	assert.True(t, tx.Finalized())
	require.Len(t, tx.Logs, 1)
	assert.Equal(t, []common.Hash{handleA, handleB}, tx.Logs[0].Topics)
	assert.Equal(t, txHash, tx.Logs[0].TxHash)
	assert.Equal(t, uint64(7), *tx.Logs[0].BlockNumber)
}

func TestTransactionRepository_GetTransaction_Pending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newRepositories(db, db.DB).Transactions

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WillReturnRows(sqlmock.NewRows(txColumns).
			AddRow(txHash.Bytes(), testOwner.Bytes(), testOwner.Bytes(), "storeHealthScore", int64(1), nil, int64(100)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM event_logs")).
		WillReturnRows(sqlmock.NewRows([]string{"log_index", "address", "topics", "data"}))

	tx, err := repo.GetTransaction(context.Background(), txHash)
	require.NoError(t, err)
	assert.False(t, tx.Finalized())
	assert.Empty(t, tx.Logs)
}

func TestTransactionRepository_SealPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newRepositories(db, db.DB).Transactions

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(number), 0) FROM blocks")).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(4)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET block_number = $1 WHERE block_number IS NULL")).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO blocks")).
		WithArgs(uint64(5), 3, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	block, err := repo.SealPending(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.Block{Number: 5, Transactions: 3, SealedAt: 42}, block)
}

func TestTransactionRepository_SealPending_NothingPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newRepositories(db, db.DB).Transactions

	mock.ExpectQuery(regexp.QuoteMeta("FROM blocks")).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(0)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	block, err := repo.SealPending(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, block)
}

func TestSplitTopics_IgnoresTrailingBytes(t *testing.T) {
	raw := append(handleA.Bytes(), 1, 2, 3)
	assert.Equal(t, []common.Hash{handleA}, splitTopics(raw))
	assert.Equal(t, raw[:32], joinTopics(splitTopics(raw)))
}
