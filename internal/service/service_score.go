package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/ledger"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

// scoreService is the homomorphic computation engine of the ledger.
type scoreService struct {
	executor *executor
	engine   fhe.Engine
	scores   store.ScoreRepository

	logger *logger.Logger
}

func NewScoreService(storages *store.Storages, engine fhe.Engine, contract common.Address, logger *logger.Logger) ScoreService {
	return &scoreService{
		executor: newExecutor(storages.UnitOfWork, engine, contract),
		engine:   engine,
		scores:   storages.Scores,
		logger:   logger,
	}
}

// ComputeScore evaluates the score and grants it to the caller without
// storing it or emitting an event.
func (s *scoreService) ComputeScore(ctx context.Context, owner common.Address, opts models.CallOptions) (models.Submission[models.HealthScore], error) {
	var score models.HealthScore
	hash, err := s.executor.execute(ctx, owner, "computeHealthScore", owner, opts, func(c *call) error {
		var err error
		if score, err = s.compute(c); err != nil {
			return err
		}
		c.allow(score.Handles()...)
		return nil
	})
	if err != nil {
		return models.Submission[models.HealthScore]{}, err
	}
	return submission(hash, opts, score), nil
}

// StoreScore evaluates the score, replaces the stored one and emits
// HealthScoreCalculated.
func (s *scoreService) StoreScore(ctx context.Context, owner common.Address, opts models.CallOptions) (models.Submission[models.HealthScore], error) {
	var score models.HealthScore
	hash, err := s.executor.execute(ctx, owner, "storeHealthScore", owner, opts, func(c *call) error {
		var err error
		if score, err = s.compute(c); err != nil {
			return err
		}
		if err := c.repos.Scores.SaveScore(ctx, owner, score); err != nil {
			return err
		}
		c.allow(score.Handles()...)
		return c.emit(ledger.EventHealthScoreCalculated, owner, big.NewInt(score.Timestamp))
	})
	if err != nil {
		return models.Submission[models.HealthScore]{}, err
	}
	return submission(hash, opts, score), nil
}

func (s *scoreService) GetScore(ctx context.Context, owner common.Address) (models.HealthScore, error) {
	score, err := s.scores.GetScore(ctx, owner)
	if store.IsNotFound(err) {
		return models.HealthScore{}, models.ErrNoHealthScore
	}
	return score, err
}

func (s *scoreService) compute(c *call) (models.HealthScore, error) {
	health, err := c.repos.Records.LatestHealthRecord(c.ctx, c.owner)
	if store.IsNotFound(err) {
		return models.HealthScore{}, models.ErrNoActiveHealthRecord
	}
	if err != nil {
		return models.HealthScore{}, err
	}

	var exercise *models.ExerciseRecord
	if rec, err := c.repos.Records.LatestExerciseRecord(c.ctx, c.owner); err == nil {
		exercise = &rec
	} else if !store.IsNotFound(err) {
		return models.HealthScore{}, err
	}

	var medication *models.MedicationRecord
	if rec, err := c.repos.Records.LatestMedicationRecord(c.ctx, c.owner); err == nil {
		medication = &rec
	} else if !store.IsNotFound(err) {
		return models.HealthScore{}, err
	}

	score, err := computeHealthScore(fhe.NewProgram(c.ctx, c.engine), health, exercise, medication)
	if err != nil {
		return models.HealthScore{}, fmt.Errorf("evaluate health score: %w", err)
	}
	score.Timestamp = c.now

	logger.FromContext(c.ctx).Debug().
		Str("func", "scoreService.compute").
		Str("owner", c.owner.Hex()).
		Uint64("health_record_id", health.ID).
		Bool("has_exercise", exercise != nil).
		Bool("has_medication", medication != nil).
		Msg("health score evaluated")
	return score, nil
}

// VerifyInRange computes min <= indicator <= max on one health record.
func (s *scoreService) VerifyInRange(ctx context.Context, owner common.Address, in models.RangeVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error) {
	var result common.Hash
	hash, err := s.executor.execute(ctx, owner, "verifyHealthRange", in, opts, func(c *call) error {
		rec, err := activeHealthRecord(ctx, c.repos.Records, owner, in.RecordID)
		if err != nil {
			return err
		}
		value, err := rec.Field(in.IndicatorType)
		if err != nil {
			return err
		}
		minimum, err := c.input(in.Min, fhe.Uint16)
		if err != nil {
			return fmt.Errorf("min: %w", err)
		}
		maximum, err := c.input(in.Max, fhe.Uint16)
		if err != nil {
			return fmt.Errorf("max: %w", err)
		}

		p := fhe.NewProgram(ctx, c.engine)
		result = p.Eval(fhe.OpAnd,
			fhe.H(p.Eval(fhe.OpGe, fhe.H(value), fhe.H(minimum))),
			fhe.H(p.Eval(fhe.OpLe, fhe.H(value), fhe.H(maximum))),
		)
		if err := p.Err(); err != nil {
			return fmt.Errorf("evaluate range check: %w", err)
		}

		c.allow(result)
		return c.emit(ledger.EventVerificationResult, owner, new(big.Int).SetUint64(in.RecordID), uint8(in.IndicatorType), [32]byte(result))
	})
	if err != nil {
		return models.Submission[common.Hash]{}, err
	}
	return submission(hash, opts, result), nil
}

// VerifyScoreThreshold computes storedTotal >= minScore.
func (s *scoreService) VerifyScoreThreshold(ctx context.Context, owner common.Address, in models.ThresholdVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error) {
	var result common.Hash
	hash, err := s.executor.execute(ctx, owner, "verifyScoreThreshold", in, opts, func(c *call) error {
		score, err := c.repos.Scores.GetScore(ctx, owner)
		if store.IsNotFound(err) {
			return models.ErrNoHealthScore
		}
		if err != nil {
			return err
		}
		minimum, err := c.input(in.MinScore, fhe.Uint16)
		if err != nil {
			return fmt.Errorf("min score: %w", err)
		}

		if result, err = c.engine.Eval(ctx, fhe.OpGe, fhe.H(score.TotalScore), fhe.H(minimum)); err != nil {
			return fmt.Errorf("evaluate threshold: %w", err)
		}

		c.allow(result)
		return c.emit(ledger.EventScoreThresholdVerified, owner, [32]byte(result))
	})
	if err != nil {
		return models.Submission[common.Hash]{}, err
	}
	return submission(hash, opts, result), nil
}
