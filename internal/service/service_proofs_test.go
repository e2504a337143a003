package service

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/ledger"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/mock"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

func (f *ledgerFixture) rangeResult(t *testing.T) models.Submission[common.Hash] {
	t.Helper()
	id := f.addHealth(t, referenceVitals)
	bounds := f.encrypt(t, fhe.Uint16, 120, 140)
	sub, err := f.scores.VerifyInRange(context.Background(), f.owner, models.RangeVerificationInput{
		RecordID: id, IndicatorType: models.IndicatorSystolicBP, Min: bounds[0], Max: bounds[1],
	}, models.CallOptions{})
	require.NoError(t, err)
	return sub
}

// ── GenerateProof ──

func TestProofService_GenerateProof(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	result := f.rangeResult(t)

	sub, err := f.proofs.GenerateProof(ctx, f.owner, models.ProofInput{VerificationType: "BP_RANGE", Result: result.Result}, models.CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sub.Result)

	proof, err := f.proofs.GetProof(ctx, f.owner, sub.Result)
	require.NoError(t, err)
	assert.Equal(t, "BP_RANGE", proof.VerificationType)
	assert.Equal(t, result.Result, proof.Result)
	assert.Equal(t, sub.TxHash, proof.TransactionHash, "a proof records the transaction that created it")
	assert.NotEqual(t, result.TxHash, proof.TransactionHash)

	count, err := f.proofs.CountProofs(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	tx, err := f.storages.Transactions.GetTransaction(ctx, sub.TxHash)
	require.NoError(t, err)
	require.Len(t, tx.Logs, 1)
	fields, err := ledger.DecodeEvent(ledger.EventVerificationProofGenerated, tx.Logs[0])
	require.NoError(t, err)
	assert.Equal(t, "BP_RANGE", fields["verificationType"])
}

func TestProofService_GenerateProof_MissingRights(t *testing.T) {
	f := newLedgerFixture(t)
	result := f.rangeResult(t)

	_, err := f.proofs.GenerateProof(context.Background(), testOwner, models.ProofInput{VerificationType: "BP_RANGE", Result: result.Result}, models.CallOptions{})
	assert.ErrorIs(t, err, models.ErrMissingRights)

	count, err := f.proofs.CountProofs(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProofService_GenerateProof_Simulate(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	result := f.rangeResult(t)

	sub, err := f.proofs.GenerateProof(ctx, f.owner, models.ProofInput{VerificationType: "BP_RANGE", Result: result.Result}, models.CallOptions{Simulate: true})
	require.NoError(t, err)
	assert.True(t, sub.Simulated)

	count, err := f.proofs.CountProofs(ctx, f.owner)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// ── GetProof ──

func TestProofService_GetProof_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	proofs := mock.NewMockProofRepository(ctrl)
	svc := NewProofService(&store.Storages{
		Repositories: store.Repositories{Proofs: proofs},
		UnitOfWork:   mock.NewMockUnitOfWork(ctrl),
	}, mock.NewMockEngine(ctrl), testContract, logger.Nop())
	ctx := context.Background()

	proofs.EXPECT().GetProof(ctx, testOwner, uint64(2)).Return(models.VerificationProof{}, store.ErrNotFound)

	_, err := svc.GetProof(ctx, testOwner, 2)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
}
