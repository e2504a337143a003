package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/mock"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

func newTestReceiptSvc(t *testing.T, ctrl *gomock.Controller) (*receiptService, *mock.MockTransactionRepository) {
	t.Helper()
	txs := mock.NewMockTransactionRepository(ctrl)
	svc := NewReceiptService(&store.Storages{
		Repositories: store.Repositories{Transactions: txs},
	}, logger.Nop()).(*receiptService)
	svc.now = func() time.Time { return time.Unix(grantStart, 0) }
	return svc, txs
}

var testTxHash = common.HexToHash("0xabc0000000000000000000000000000000000000000000000000000000000001")

// ── GetReceipt ──

func TestReceiptService_GetReceipt_Sealed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, txs := newTestReceiptSvc(t, ctrl)
	ctx := context.Background()
	block := uint64(7)

	txs.EXPECT().GetTransaction(ctx, testTxHash).Return(models.Transaction{Hash: testTxHash, BlockNumber: &block}, nil)

	receipt, err := svc.GetReceipt(ctx, testTxHash)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), *receipt.BlockNumber)
}

func TestReceiptService_GetReceipt_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, txs := newTestReceiptSvc(t, ctrl)
	ctx := context.Background()

	txs.EXPECT().GetTransaction(ctx, testTxHash).Return(models.Transaction{Hash: testTxHash}, nil)

	_, err := svc.GetReceipt(ctx, testTxHash)
	assert.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestReceiptService_GetReceipt_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, txs := newTestReceiptSvc(t, ctrl)
	ctx := context.Background()

	txs.EXPECT().GetTransaction(ctx, testTxHash).Return(models.Transaction{}, store.ErrNotFound)

	_, err := svc.GetReceipt(ctx, testTxHash)
	assert.ErrorIs(t, err, ErrReceiptNotFound)
}

// ── SealPending ──

func TestReceiptService_SealPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, txs := newTestReceiptSvc(t, ctrl)
	ctx := context.Background()
	want := models.Block{Number: 3, Transactions: 2, SealedAt: grantStart}

	txs.EXPECT().SealPending(ctx, grantStart).Return(want, nil)

	got, err := svc.SealPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReceiptService_SealPending_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, txs := newTestReceiptSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("locked")

	txs.EXPECT().SealPending(ctx, grantStart).Return(models.Block{}, dbErr)

	_, err := svc.SealPending(ctx)
	assert.ErrorIs(t, err, dbErr)
}

func TestReceiptService_ReceiptAfterSealing(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	receipts := NewReceiptService(f.storages, logger.Nop())

	f.addHealth(t, referenceVitals)
	sub, err := f.scores.StoreScore(ctx, f.owner, models.CallOptions{})
	require.NoError(t, err)

	_, err = receipts.GetReceipt(ctx, sub.TxHash)
	require.ErrorIs(t, err, ErrReceiptNotFound)

	block, err := receipts.SealPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, block.Transactions)

	receipt, err := receipts.GetReceipt(ctx, sub.TxHash)
	require.NoError(t, err)
	require.NotNil(t, receipt.BlockNumber)
	assert.Equal(t, block.Number, *receipt.BlockNumber)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, block.Number, *receipt.Logs[0].BlockNumber)

	empty, err := receipts.SealPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Transactions)
}
