package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/ledger"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

// recordService is the concrete implementation of RecordService. Writes go
// through the executor; reads hit the repositories directly.
type recordService struct {
	executor *executor
	records  store.RecordRepository

	logger *logger.Logger
}

func NewRecordService(storages *store.Storages, engine fhe.Engine, contract common.Address, logger *logger.Logger) RecordService {
	return &recordService{
		executor: newExecutor(storages.UnitOfWork, engine, contract),
		records:  storages.Records,
		logger:   logger,
	}
}

func (s *recordService) AddHealthRecord(ctx context.Context, owner common.Address, in models.HealthRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	var id uint64
	hash, err := s.executor.execute(ctx, owner, "addHealthRecord", in, opts, func(c *call) error {
		rec := models.HealthRecord{Owner: owner, Timestamp: c.now}
		fields := []*common.Hash{&rec.SystolicBP, &rec.DiastolicBP, &rec.BloodGlucose, &rec.HeartRate, &rec.Weight}
		for i, input := range in.Inputs() {
			h, err := c.input(input, fhe.Uint16)
			if err != nil {
				return fmt.Errorf("%s: %w", models.Indicator(i), err)
			}
			*fields[i] = h
		}

		var err error
		if id, err = c.repos.Records.AppendHealthRecord(ctx, rec); err != nil {
			return err
		}
		c.allow(rec.Handles()...)
		return c.emit(ledger.EventHealthRecordAdded, owner, new(big.Int).SetUint64(id), big.NewInt(c.now))
	})
	if err != nil {
		return models.Submission[uint64]{}, err
	}
	return submission(hash, opts, id), nil
}

func (s *recordService) AddMedicationRecord(ctx context.Context, owner common.Address, in models.MedicationRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	var id uint64
	hash, err := s.executor.execute(ctx, owner, "addMedicationRecord", in, opts, func(c *call) error {
		dosage, err := c.input(in.Dosage, fhe.Uint16)
		if err != nil {
			return fmt.Errorf("dosage: %w", err)
		}
		frequency, err := c.input(in.Frequency, fhe.Uint8)
		if err != nil {
			return fmt.Errorf("frequency: %w", err)
		}

		rec := models.MedicationRecord{
			Owner:     owner,
			Timestamp: c.now,
			Name:      in.Name,
			Dosage:    dosage,
			Frequency: frequency,
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
		}
		if id, err = c.repos.Records.AppendMedicationRecord(ctx, rec); err != nil {
			return err
		}
		c.allow(rec.Handles()...)
		return c.emit(ledger.EventMedicationRecordAdded, owner, new(big.Int).SetUint64(id), big.NewInt(c.now))
	})
	if err != nil {
		return models.Submission[uint64]{}, err
	}
	return submission(hash, opts, id), nil
}

func (s *recordService) AddExerciseRecord(ctx context.Context, owner common.Address, in models.ExerciseRecordInput, opts models.CallOptions) (models.Submission[uint64], error) {
	var id uint64
	hash, err := s.executor.execute(ctx, owner, "addExerciseRecord", in, opts, func(c *call) error {
		duration, err := c.input(in.Duration, fhe.Uint16)
		if err != nil {
			return fmt.Errorf("duration: %w", err)
		}
		calories, err := c.input(in.Calories, fhe.Uint16)
		if err != nil {
			return fmt.Errorf("calories: %w", err)
		}

		rec := models.ExerciseRecord{
			Owner:        owner,
			Timestamp:    c.now,
			ExerciseType: in.ExerciseType,
			Duration:     duration,
			Calories:     calories,
		}
		if id, err = c.repos.Records.AppendExerciseRecord(ctx, rec); err != nil {
			return err
		}
		c.allow(rec.Handles()...)
		return c.emit(ledger.EventExerciseRecordAdded, owner, new(big.Int).SetUint64(id), big.NewInt(c.now))
	})
	if err != nil {
		return models.Submission[uint64]{}, err
	}
	return submission(hash, opts, id), nil
}

func (s *recordService) GetHealthRecord(ctx context.Context, owner common.Address, id uint64) (models.HealthRecord, error) {
	return activeHealthRecord(ctx, s.records, owner, id)
}

func (s *recordService) GetMedicationRecord(ctx context.Context, owner common.Address, id uint64) (models.MedicationRecord, error) {
	rec, err := s.records.GetMedicationRecord(ctx, owner, id)
	if err != nil {
		return models.MedicationRecord{}, recordError(models.KindMedication, id, err)
	}
	return rec, nil
}

func (s *recordService) GetExerciseRecord(ctx context.Context, owner common.Address, id uint64) (models.ExerciseRecord, error) {
	rec, err := s.records.GetExerciseRecord(ctx, owner, id)
	if err != nil {
		return models.ExerciseRecord{}, recordError(models.KindExercise, id, err)
	}
	return rec, nil
}

func (s *recordService) DeleteHealthRecord(ctx context.Context, owner common.Address, id uint64, opts models.CallOptions) (models.Submission[uint64], error) {
	hash, err := s.executor.execute(ctx, owner, "deleteHealthRecord", id, opts, func(c *call) error {
		if _, err := activeHealthRecord(ctx, c.repos.Records, owner, id); err != nil {
			return err
		}
		if err := c.repos.Records.MarkHealthRecordDeleted(ctx, owner, id); err != nil {
			if errors.Is(err, store.ErrNothingUpdated) {
				return models.Errorf(models.ErrRecordDeleted, "health record %d", id)
			}
			return err
		}
		return c.emit(ledger.EventHealthRecordDeleted, owner, new(big.Int).SetUint64(id))
	})
	if err != nil {
		return models.Submission[uint64]{}, err
	}
	return submission(hash, opts, id), nil
}

func (s *recordService) CountRecords(ctx context.Context, owner common.Address, kind models.RecordKind) (uint64, error) {
	if !kind.Valid() {
		return 0, models.Errorf(models.ErrUnknownRecordKind, "%q", kind)
	}
	return s.records.Count(ctx, owner, kind)
}

// activeHealthRecord loads a health record and refuses tombstones.
func activeHealthRecord(ctx context.Context, records store.RecordRepository, owner common.Address, id uint64) (models.HealthRecord, error) {
	rec, err := records.GetHealthRecord(ctx, owner, id)
	if err != nil {
		return models.HealthRecord{}, recordError(models.KindHealth, id, err)
	}
	if rec.Deleted {
		return models.HealthRecord{}, models.Errorf(models.ErrRecordDeleted, "health record %d", id)
	}
	return rec, nil
}

// recordError translates a missing row into the ledger's out-of-range error.
func recordError(kind models.RecordKind, id uint64, err error) error {
	if store.IsNotFound(err) {
		return models.Errorf(models.ErrIndexOutOfRange, "%s record %d", kind, id)
	}
	return err
}
