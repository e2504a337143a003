package service

import (
	"context"
	"errors"
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

var testOwner = common.HexToAddress("0x00000000000000000000000000000000000000a1")

func newTestRecordSvc(t *testing.T, ctrl *gomock.Controller) (RecordService, *mock.MockRecordRepository) {
	t.Helper()
	records := mock.NewMockRecordRepository(ctrl)
	storages := &store.Storages{
		Repositories: store.Repositories{Records: records},
		UnitOfWork:   mock.NewMockUnitOfWork(ctrl),
	}
	return NewRecordService(storages, mock.NewMockEngine(ctrl), testContract, logger.Nop()), records
}

// ── AddHealthRecord ──

func TestRecordService_AddHealthRecord_AssignsSequentialIDs(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	first := f.addHealth(t, referenceVitals)
	second := f.addHealth(t, referenceVitals)
	assert.Equal(t, uint64(0), first)
	assert.Equal(t, uint64(1), second)

	count, err := f.records.CountRecords(ctx, f.owner, models.KindHealth)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	rec, err := f.records.GetHealthRecord(ctx, f.owner, second)
	require.NoError(t, err)
	assert.Equal(t, f.owner, rec.Owner)
	assert.Equal(t, []uint64{130, 85, 90, 72, 70}, f.decrypt(t, rec.Handles()...))
}

func TestRecordService_AddHealthRecord_EmitsEvent(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	in := f.encrypt(t, fhe.Uint16, 120, 80, 95, 70, 60)
	sub, err := f.records.AddHealthRecord(ctx, f.owner, models.HealthRecordInput{
		SystolicBP: in[0], DiastolicBP: in[1], BloodGlucose: in[2], HeartRate: in[3], Weight: in[4],
	}, models.CallOptions{})
	require.NoError(t, err)

	tx, err := f.storages.Transactions.GetTransaction(ctx, sub.TxHash)
	require.NoError(t, err)
	assert.Equal(t, "addHealthRecord", tx.Method)
	assert.Equal(t, f.owner, tx.From)
	assert.Equal(t, testContract, tx.To)
	assert.False(t, tx.Finalized())
	require.Len(t, tx.Logs, 1)

	fields, err := ledger.DecodeEvent(ledger.EventHealthRecordAdded, tx.Logs[0])
	require.NoError(t, err)
	assert.Equal(t, f.owner, fields["user"])
	assert.Equal(t, sub.TxHash, tx.Logs[0].TxHash)
}

func TestRecordService_AddHealthRecord_WrongInputType(t *testing.T) {
	f := newLedgerFixture(t)

	in := f.encrypt(t, fhe.Uint8, 120, 80, 95, 70, 60)
	_, err := f.records.AddHealthRecord(context.Background(), f.owner, models.HealthRecordInput{
		SystolicBP: in[0], DiastolicBP: in[1], BloodGlucose: in[2], HeartRate: in[3], Weight: in[4],
	}, models.CallOptions{})
	assert.ErrorIs(t, err, models.ErrInvalidHandleType)

	count, err := f.records.CountRecords(context.Background(), f.owner, models.KindHealth)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordService_AddHealthRecord_Simulate(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	in := f.encrypt(t, fhe.Uint16, 120, 80, 95, 70, 60)
	sub, err := f.records.AddHealthRecord(ctx, f.owner, models.HealthRecordInput{
		SystolicBP: in[0], DiastolicBP: in[1], BloodGlucose: in[2], HeartRate: in[3], Weight: in[4],
	}, models.CallOptions{Simulate: true})
	require.NoError(t, err)
	assert.True(t, sub.Simulated)
	assert.Equal(t, common.Hash{}, sub.TxHash)
	assert.Equal(t, uint64(0), sub.Result)

	count, err := f.records.CountRecords(ctx, f.owner, models.KindHealth)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// ── Medication and exercise ──

func TestRecordService_MedicationAndExercise(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	dosage := f.encrypt(t, fhe.Uint16, 500)
	frequency := f.encrypt(t, fhe.Uint8, 3)
	med, err := f.records.AddMedicationRecord(ctx, f.owner, models.MedicationRecordInput{
		Name: "Lisinopril", Dosage: dosage[0], Frequency: frequency[0], StartDate: 100, EndDate: 200,
	}, models.CallOptions{})
	require.NoError(t, err)

	ex := f.encrypt(t, fhe.Uint16, 30, 200)
	exercise, err := f.records.AddExerciseRecord(ctx, f.owner, models.ExerciseRecordInput{
		ExerciseType: "Cycling", Duration: ex[0], Calories: ex[1],
	}, models.CallOptions{})
	require.NoError(t, err)

	gotMed, err := f.records.GetMedicationRecord(ctx, f.owner, med.Result)
	require.NoError(t, err)
	assert.Equal(t, "Lisinopril", gotMed.Name)
	assert.Equal(t, int64(100), gotMed.StartDate)
	assert.Equal(t, []uint64{500, 3}, f.decrypt(t, gotMed.Handles()...))

	gotEx, err := f.records.GetExerciseRecord(ctx, f.owner, exercise.Result)
	require.NoError(t, err)
	assert.Equal(t, "Cycling", gotEx.ExerciseType)
	assert.Equal(t, []uint64{30, 200}, f.decrypt(t, gotEx.Handles()...))
}

func TestRecordService_AddMedicationRecord_FrequencyMustBe8Bit(t *testing.T) {
	f := newLedgerFixture(t)

	in := f.encrypt(t, fhe.Uint16, 500, 3)
	_, err := f.records.AddMedicationRecord(context.Background(), f.owner, models.MedicationRecordInput{
		Name: "Lisinopril", Dosage: in[0], Frequency: in[1],
	}, models.CallOptions{})
	assert.ErrorIs(t, err, models.ErrInvalidHandleType)
}

// ── DeleteHealthRecord ──

func TestRecordService_DeleteHealthRecord(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	id := f.addHealth(t, referenceVitals)

	sub, err := f.records.DeleteHealthRecord(ctx, f.owner, id, models.CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, id, sub.Result)

	_, err = f.records.GetHealthRecord(ctx, f.owner, id)
	assert.ErrorIs(t, err, models.ErrRecordDeleted)

	_, err = f.records.DeleteHealthRecord(ctx, f.owner, id, models.CallOptions{})
	assert.ErrorIs(t, err, models.ErrRecordDeleted)

	// tombstones still count
	count, err := f.records.CountRecords(ctx, f.owner, models.KindHealth)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestRecordService_DeleteHealthRecord_OtherOwner(t *testing.T) {
	f := newLedgerFixture(t)
	id := f.addHealth(t, referenceVitals)

	_, err := f.records.DeleteHealthRecord(context.Background(), testOwner, id, models.CallOptions{})
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
}

// ── Reads ──

func TestRecordService_GetHealthRecord_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	records.EXPECT().GetHealthRecord(ctx, testOwner, uint64(4)).Return(models.HealthRecord{}, store.ErrNotFound)

	_, err := svc.GetHealthRecord(ctx, testOwner, 4)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
	assert.ErrorIs(t, err, models.ErrAccess)
}

func TestRecordService_GetHealthRecord_Tombstone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	records.EXPECT().GetHealthRecord(ctx, testOwner, uint64(0)).Return(models.HealthRecord{Deleted: true}, nil)

	_, err := svc.GetHealthRecord(ctx, testOwner, 0)
	assert.ErrorIs(t, err, models.ErrRecordDeleted)
}

func TestRecordService_GetMedicationRecord_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	records.EXPECT().GetMedicationRecord(ctx, testOwner, uint64(0)).Return(models.MedicationRecord{}, dbErr)

	_, err := svc.GetMedicationRecord(ctx, testOwner, 0)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, models.ErrIndexOutOfRange)
}

func TestRecordService_GetExerciseRecord_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, records := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	records.EXPECT().GetExerciseRecord(ctx, testOwner, uint64(9)).Return(models.ExerciseRecord{}, store.ErrNotFound)

	_, err := svc.GetExerciseRecord(ctx, testOwner, 9)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
}

func TestRecordService_CountRecords_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecordSvc(t, ctrl)

	_, err := svc.CountRecords(context.Background(), testOwner, models.RecordKind("sleep"))
	assert.ErrorIs(t, err, models.ErrUnknownRecordKind)
}
