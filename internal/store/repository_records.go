package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

// recordRepository stores records keyed by (owner, id). Ids are the
// owner's record count at append time, so they are dense and start at 0.
type recordRepository struct {
	q          querier
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
}

func tableFor(kind models.RecordKind) (string, error) {
	switch kind {
	case models.KindHealth:
		return tableHealthRecords, nil
	case models.KindMedication:
		return tableMedicationRecords, nil
	case models.KindExercise:
		return tableExerciseRecords, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func (r *recordRepository) Count(ctx context.Context, owner common.Address, kind models.RecordKind) (uint64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	return countRows(ctx, r.q, "recordRepository.Count", r.builder, table, sq.Expr("owner = ?", owner))
}

// insert assigns the next id for owner in table and inserts the row built
// by values(id).
func (r *recordRepository) insert(ctx context.Context, fn string, table string, owner common.Address, columns []string, values func(id uint64) []any) (uint64, error) {
	id, err := countRows(ctx, r.q, fn, r.builder, table, sq.Expr("owner = ?", owner))
	if err != nil {
		return 0, err
	}

	_, err = execStatement(ctx, r.q, fn, r.builder.Insert(table).Columns(columns...).Values(values(id)...))
	if err != nil {
		if r.classifier != nil && r.classifier.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s id %d", ErrDuplicateKey, table, id)
		}
		return 0, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", fn).
		Str("owner", owner.Hex()).
		Uint64("record_id", id).
		Msg("record appended")
	return id, nil
}

func (r *recordRepository) AppendHealthRecord(ctx context.Context, rec models.HealthRecord) (uint64, error) {
	return r.insert(ctx, "recordRepository.AppendHealthRecord", tableHealthRecords, rec.Owner, healthColumns, func(id uint64) []any {
		return []any{rec.Owner, id, rec.Timestamp, rec.SystolicBP, rec.DiastolicBP, rec.BloodGlucose, rec.HeartRate, rec.Weight, false}
	})
}

func (r *recordRepository) scanHealth(ctx context.Context, fn string, b sq.SelectBuilder) (models.HealthRecord, error) {
	var rec models.HealthRecord
	err := queryRow(ctx, r.q, fn, b, &rec.Owner, &rec.ID, &rec.Timestamp,
		&rec.SystolicBP, &rec.DiastolicBP, &rec.BloodGlucose, &rec.HeartRate, &rec.Weight, &rec.Deleted)
	return rec, err
}

func (r *recordRepository) GetHealthRecord(ctx context.Context, owner common.Address, id uint64) (models.HealthRecord, error) {
	return r.scanHealth(ctx, "recordRepository.GetHealthRecord", r.builder.
		Select(healthColumns...).
		From(tableHealthRecords).
		Where("owner = ?", owner).
		Where("id = ?", id))
}

func (r *recordRepository) LatestHealthRecord(ctx context.Context, owner common.Address) (models.HealthRecord, error) {
	return r.scanHealth(ctx, "recordRepository.LatestHealthRecord", r.builder.
		Select(healthColumns...).
		From(tableHealthRecords).
		Where("owner = ?", owner).
		Where("deleted = ?", false).
		OrderBy("id DESC").
		Limit(1))
}

func (r *recordRepository) MarkHealthRecordDeleted(ctx context.Context, owner common.Address, id uint64) error {
	res, err := execStatement(ctx, r.q, "recordRepository.MarkHealthRecordDeleted", r.builder.
		Update(tableHealthRecords).
		Set("deleted", true).
		Where("owner = ?", owner).
		Where("id = ?", id).
		Where("deleted = ?", false))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNothingUpdated
	}
	return nil
}

func (r *recordRepository) AppendMedicationRecord(ctx context.Context, rec models.MedicationRecord) (uint64, error) {
	return r.insert(ctx, "recordRepository.AppendMedicationRecord", tableMedicationRecords, rec.Owner, medicationColumns, func(id uint64) []any {
		return []any{rec.Owner, id, rec.Timestamp, rec.Name, rec.Dosage, rec.Frequency, rec.StartDate, rec.EndDate}
	})
}

func (r *recordRepository) scanMedication(ctx context.Context, fn string, b sq.SelectBuilder) (models.MedicationRecord, error) {
	var rec models.MedicationRecord
	err := queryRow(ctx, r.q, fn, b, &rec.Owner, &rec.ID, &rec.Timestamp,
		&rec.Name, &rec.Dosage, &rec.Frequency, &rec.StartDate, &rec.EndDate)
	return rec, err
}

func (r *recordRepository) GetMedicationRecord(ctx context.Context, owner common.Address, id uint64) (models.MedicationRecord, error) {
	return r.scanMedication(ctx, "recordRepository.GetMedicationRecord", r.builder.
		Select(medicationColumns...).
		From(tableMedicationRecords).
		Where("owner = ?", owner).
		Where("id = ?", id))
}

func (r *recordRepository) LatestMedicationRecord(ctx context.Context, owner common.Address) (models.MedicationRecord, error) {
	return r.scanMedication(ctx, "recordRepository.LatestMedicationRecord", r.builder.
		Select(medicationColumns...).
		From(tableMedicationRecords).
		Where("owner = ?", owner).
		OrderBy("id DESC").
		Limit(1))
}

func (r *recordRepository) AppendExerciseRecord(ctx context.Context, rec models.ExerciseRecord) (uint64, error) {
	return r.insert(ctx, "recordRepository.AppendExerciseRecord", tableExerciseRecords, rec.Owner, exerciseColumns, func(id uint64) []any {
		return []any{rec.Owner, id, rec.Timestamp, rec.ExerciseType, rec.Duration, rec.Calories}
	})
}

func (r *recordRepository) scanExercise(ctx context.Context, fn string, b sq.SelectBuilder) (models.ExerciseRecord, error) {
	var rec models.ExerciseRecord
	err := queryRow(ctx, r.q, fn, b, &rec.Owner, &rec.ID, &rec.Timestamp,
		&rec.ExerciseType, &rec.Duration, &rec.Calories)
	return rec, err
}

func (r *recordRepository) GetExerciseRecord(ctx context.Context, owner common.Address, id uint64) (models.ExerciseRecord, error) {
	return r.scanExercise(ctx, "recordRepository.GetExerciseRecord", r.builder.
		Select(exerciseColumns...).
		From(tableExerciseRecords).
		Where("owner = ?", owner).
		Where("id = ?", id))
}

func (r *recordRepository) LatestExerciseRecord(ctx context.Context, owner common.Address) (models.ExerciseRecord, error) {
	return r.scanExercise(ctx, "recordRepository.LatestExerciseRecord", r.builder.
		Select(exerciseColumns...).
		From(tableExerciseRecords).
		Where("owner = ?", owner).
		OrderBy("id DESC").
		Limit(1))
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
