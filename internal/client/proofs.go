package client

import (
	"context"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/session"
	"github.com/TessVincent/prismhealth/models"
)

// GenerateProof records a verification result under the given type, e.g.
// models.VerificationInsurance. It returns the new proof id.
func (c *Client) GenerateProof(ctx context.Context, verificationType string, result fhe.Handle) (models.Submission[uint64], error) {
	if verificationType == "" {
		return models.Submission[uint64]{}, models.Errorf(models.ErrEmptyField, "verification type")
	}

	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.Submission[uint64], error) {
		sub, err := c.ledger.GenerateProof(ctx, models.ProofInput{VerificationType: verificationType, Result: result}, models.CallOptions{})
		if err != nil {
			return models.Submission[uint64]{}, err
		}
		if _, err = settle(ctx, c, sub); err != nil {
			return models.Submission[uint64]{}, err
		}
		return sub, nil
	})
}

func (c *Client) GetProof(ctx context.Context, proofID uint64) (models.VerificationProof, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.VerificationProof, error) {
		return c.ledger.GetProof(ctx, proofID)
	})
}

func (c *Client) CountProofs(ctx context.Context) (uint64, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (uint64, error) {
		return c.ledger.CountProofs(ctx)
	})
}
