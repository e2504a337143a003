package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/validators"
	"github.com/TessVincent/prismhealth/models"
)

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}

type ScoreServiceWrapper interface {
	Wrap(ScoreService) ScoreService
}

type ProofServiceWrapper interface {
	Wrap(ProofService) ProofService
}

// RecordValidationService rejects malformed record input before it reaches
// the ledger. Reads pass straight through.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{validator: validators.NewLedgerValidator()}
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}

func (v *RecordValidationService) AddHealthRecord(ctx context.Context, owner common.Address, in models.HealthRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Submission[uint64]{}, fmt.Errorf("error during health record validation: %w", err)
	}
	return v.inner.AddHealthRecord(ctx, owner, in, opts)
}

func (v *RecordValidationService) AddMedicationRecord(ctx context.Context, owner common.Address, in models.MedicationRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Submission[uint64]{}, fmt.Errorf("error during medication record validation: %w", err)
	}
	return v.inner.AddMedicationRecord(ctx, owner, in, opts)
}

func (v *RecordValidationService) AddExerciseRecord(ctx context.Context, owner common.Address, in models.ExerciseRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Submission[uint64]{}, fmt.Errorf("error during exercise record validation: %w", err)
	}
	return v.inner.AddExerciseRecord(ctx, owner, in, opts)
}

func (v *RecordValidationService) GetHealthRecord(ctx context.Context, owner common.Address, id uint64) (models.HealthRecord, error) {
	return v.inner.GetHealthRecord(ctx, owner, id)
}

func (v *RecordValidationService) GetMedicationRecord(ctx context.Context, owner common.Address, id uint64) (models.MedicationRecord, error) {
	return v.inner.GetMedicationRecord(ctx, owner, id)
}

func (v *RecordValidationService) GetExerciseRecord(ctx context.Context, owner common.Address, id uint64) (models.ExerciseRecord, error) {
	return v.inner.GetExerciseRecord(ctx, owner, id)
}

func (v *RecordValidationService) DeleteHealthRecord(ctx context.Context, owner common.Address, id uint64, opts models.CallOptions) (models.Submission[uint64], error) {
	return v.inner.DeleteHealthRecord(ctx, owner, id, opts)
}

func (v *RecordValidationService) CountRecords(ctx context.Context, owner common.Address, kind models.RecordKind) (uint64, error) {
	if !kind.Valid() {
		return 0, models.Errorf(models.ErrUnknownRecordKind, "%q", kind)
	}
	return v.inner.CountRecords(ctx, owner, kind)
}

// ScoreValidationService checks range and threshold requests.
type ScoreValidationService struct {
	inner     ScoreService
	validator validators.Validator
}

func NewScoreValidationService() ScoreServiceWrapper {
	return &ScoreValidationService{validator: validators.NewLedgerValidator()}
}

func (v *ScoreValidationService) Wrap(inner ScoreService) ScoreService {
	v.inner = inner
	return v
}

func (v *ScoreValidationService) ComputeScore(ctx context.Context, owner common.Address, opts models.CallOptions) (models.Submission[models.HealthScore], error) {
	return v.inner.ComputeScore(ctx, owner, opts)
}

func (v *ScoreValidationService) StoreScore(ctx context.Context, owner common.Address, opts models.CallOptions) (models.Submission[models.HealthScore], error) {
	return v.inner.StoreScore(ctx, owner, opts)
}

func (v *ScoreValidationService) GetScore(ctx context.Context, owner common.Address) (models.HealthScore, error) {
	return v.inner.GetScore(ctx, owner)
}

func (v *ScoreValidationService) VerifyInRange(ctx context.Context, owner common.Address, in models.RangeVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Submission[common.Hash]{}, fmt.Errorf("error during range verification validation: %w", err)
	}
	return v.inner.VerifyInRange(ctx, owner, in, opts)
}

func (v *ScoreValidationService) VerifyScoreThreshold(ctx context.Context, owner common.Address, in models.ThresholdVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Submission[common.Hash]{}, fmt.Errorf("error during threshold verification validation: %w", err)
	}
	return v.inner.VerifyScoreThreshold(ctx, owner, in, opts)
}

type ProofValidationService struct {
	inner     ProofService
	validator validators.Validator
}

func NewProofValidationService() ProofServiceWrapper {
	return &ProofValidationService{validator: validators.NewLedgerValidator()}
}

func (v *ProofValidationService) Wrap(inner ProofService) ProofService {
	v.inner = inner
	return v
}

func (v *ProofValidationService) GenerateProof(ctx context.Context, owner common.Address, in models.ProofInput, opts models.CallOptions) (models.Submission[uint64], error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Submission[uint64]{}, fmt.Errorf("error during proof validation: %w", err)
	}
	return v.inner.GenerateProof(ctx, owner, in, opts)
}

func (v *ProofValidationService) GetProof(ctx context.Context, owner common.Address, id uint64) (models.VerificationProof, error) {
	return v.inner.GetProof(ctx, owner, id)
}

func (v *ProofValidationService) CountProofs(ctx context.Context, owner common.Address) (uint64, error) {
	return v.inner.CountProofs(ctx, owner)
}
