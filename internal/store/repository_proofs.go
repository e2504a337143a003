package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

type proofRepository struct {
	q          querier
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
}

func (r *proofRepository) CountProofs(ctx context.Context, owner common.Address) (uint64, error) {
	return countRows(ctx, r.q, "proofRepository.CountProofs", r.builder, tableProofs, sq.Expr("owner = ?", owner))
}

func (r *proofRepository) AppendProof(ctx context.Context, p models.VerificationProof) (uint64, error) {
	id, err := r.CountProofs(ctx, p.Owner)
	if err != nil {
		return 0, err
	}

	_, err = execStatement(ctx, r.q, "proofRepository.AppendProof", r.builder.
		Insert(tableProofs).
		Columns(proofColumns...).
		Values(p.Owner, id, p.Timestamp, p.VerificationType, p.Result, p.TransactionHash))
	if err != nil {
		if r.classifier != nil && r.classifier.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: proof id %d", ErrDuplicateKey, id)
		}
		return 0, err
	}
	return id, nil
}

func (r *proofRepository) GetProof(ctx context.Context, owner common.Address, id uint64) (models.VerificationProof, error) {
	var p models.VerificationProof
	err := queryRow(ctx, r.q, "proofRepository.GetProof", r.builder.
		Select(proofColumns...).
		From(tableProofs).
		Where("owner = ?", owner).
		Where("id = ?", id),
		&p.Owner, &p.ID, &p.Timestamp, &p.VerificationType, &p.Result, &p.TransactionHash)
	return p, err
}
