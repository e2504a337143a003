package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

type scoreRepository struct {
	q       querier
	builder sq.StatementBuilderType
}

// SaveScore overwrites the owner's previous score.
func (r *scoreRepository) SaveScore(ctx context.Context, owner common.Address, s models.HealthScore) error {
	_, err := execStatement(ctx, r.q, "scoreRepository.SaveScore", r.builder.
		Insert(tableHealthScores).
		Columns(scoreColumns...).
		Values(owner, s.TotalScore, s.Cardiovascular, s.Metabolic, s.Exercise, s.Medication, s.RiskLevel, s.Timestamp).
		Suffix(`ON CONFLICT (owner) DO UPDATE SET
			total_score = excluded.total_score,
			cardiovascular = excluded.cardiovascular,
			metabolic = excluded.metabolic,
			exercise = excluded.exercise,
			medication = excluded.medication,
			risk_level = excluded.risk_level,
			timestamp = excluded.timestamp`))
	return err
}

func (r *scoreRepository) GetScore(ctx context.Context, owner common.Address) (models.HealthScore, error) {
	var (
		s        models.HealthScore
		scoredBy common.Address
	)
	err := queryRow(ctx, r.q, "scoreRepository.GetScore", r.builder.
		Select(scoreColumns...).
		From(tableHealthScores).
		Where("owner = ?", owner),
		&scoredBy, &s.TotalScore, &s.Cardiovascular, &s.Metabolic, &s.Exercise, &s.Medication, &s.RiskLevel, &s.Timestamp)
	return s, err
}
