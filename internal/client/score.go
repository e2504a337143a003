package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/adapter"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/resolver"
	"github.com/TessVincent/prismhealth/internal/session"
	"github.com/TessVincent/prismhealth/models"
)

// Verification is the outcome of a range or threshold check. Handle is the
// encrypted boolean the ledger produced; it can back a proof.
type Verification struct {
	Passed bool
	Handle fhe.Handle
	TxHash common.Hash
}

// ComputeScore recomputes the composite score from the latest active health
// record without storing it and returns the decrypted values.
func (c *Client) ComputeScore(ctx context.Context) (models.ScoreValues, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.ScoreValues, error) {
		sub, err := c.ledger.ComputeScore(ctx, models.CallOptions{})
		if err != nil {
			return models.ScoreValues{}, err
		}
		if _, err = settle(ctx, c, sub); err != nil {
			return models.ScoreValues{}, err
		}
		return c.openScore(ctx, sub.Result)
	})
}

// StoreScore computes the score and persists it as the account's current
// score.
func (c *Client) StoreScore(ctx context.Context) (common.Hash, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (common.Hash, error) {
		sub, err := c.ledger.StoreScore(ctx, models.CallOptions{})
		if err != nil {
			return common.Hash{}, err
		}
		if _, err = settle(ctx, c, sub); err != nil {
			return common.Hash{}, err
		}
		return sub.TxHash, nil
	})
}

func (c *Client) GetScore(ctx context.Context) (models.HealthScore, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.HealthScore, error) {
		return c.ledger.GetScore(ctx)
	})
}

// DecryptScore reads the stored score and opens all six values under one
// grant.
func (c *Client) DecryptScore(ctx context.Context) (models.ScoreValues, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.ScoreValues, error) {
		score, err := c.ledger.GetScore(ctx)
		if err != nil {
			return models.ScoreValues{}, err
		}
		return c.openScore(ctx, score)
	})
}

func (c *Client) openScore(ctx context.Context, score models.HealthScore) (models.ScoreValues, error) {
	values, err := c.decrypt(ctx, score.Handles()...)
	if err != nil {
		return models.ScoreValues{}, err
	}
	return models.ScoreValues{
		TotalScore:     uint16(values[score.TotalScore].Value),
		Cardiovascular: uint8(values[score.Cardiovascular].Value),
		Metabolic:      uint8(values[score.Metabolic].Value),
		Exercise:       uint8(values[score.Exercise].Value),
		Medication:     uint8(values[score.Medication].Value),
		RiskLevel:      uint8(values[score.RiskLevel].Value),
		Timestamp:      score.Timestamp,
	}, nil
}

// VerifyInRange checks min <= indicator <= max for one of the account's
// health records without revealing the value to the ledger.
func (c *Client) VerifyInRange(ctx context.Context, recordID uint64, indicator models.Indicator, min, max uint16) (Verification, error) {
	if !indicator.Valid() {
		return Verification{}, models.Errorf(models.ErrUnknownIndicator, "%d", indicator)
	}

	return session.Run(ctx, c.guard, func(ctx context.Context, id session.Identity) (Verification, error) {
		enc, err := c.encrypt(ctx, id, []uint64{uint64(min), uint64(max)}, []uint8{16, 16})
		if err != nil {
			return Verification{}, err
		}
		in := models.RangeVerificationInput{
			RecordID:      recordID,
			IndicatorType: indicator,
			Min:           enc.Input(0),
			Max:           enc.Input(1),
		}

		sub, err := c.ledger.VerifyInRange(ctx, in, models.CallOptions{})
		if err != nil {
			return Verification{}, err
		}
		return c.verification(ctx, sub, func(ctx context.Context) (string, error) {
			return c.ledger.Simulate(ctx, adapter.PathVerifyRange, in)
		})
	})
}

// VerifyScoreThreshold checks that the stored total score is at least
// minScore.
func (c *Client) VerifyScoreThreshold(ctx context.Context, minScore uint16) (Verification, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, id session.Identity) (Verification, error) {
		enc, err := c.encrypt(ctx, id, []uint64{uint64(minScore)}, []uint8{16})
		if err != nil {
			return Verification{}, err
		}
		in := models.ThresholdVerificationInput{MinScore: enc.Input(0)}

		sub, err := c.ledger.VerifyScoreThreshold(ctx, in, models.CallOptions{})
		if err != nil {
			return Verification{}, err
		}
		return c.verification(ctx, sub, func(ctx context.Context) (string, error) {
			return c.ledger.Simulate(ctx, adapter.PathVerifyThreshold, in)
		})
	})
}

// verification waits for a verify call to be sealed, recovers its result
// handle from the receipt and opens it.
func (c *Client) verification(ctx context.Context, sub models.Submission[common.Hash], simulate resolver.SimulateFunc) (Verification, error) {
	receipt, err := settle(ctx, c, sub)
	if err != nil {
		return Verification{}, err
	}

	handle, err := resolver.Resolve(ctx, receipt, simulate)
	if err != nil {
		return Verification{}, err
	}
	if sub.Result != (common.Hash{}) && sub.Result != handle {
		c.logger.Warn().
			Str("returned", sub.Result.Hex()).
			Str("resolved", handle.Hex()).
			Msg("verification result differs from the logged handle")
	}

	values, err := c.decrypt(ctx, handle)
	if err != nil {
		return Verification{}, err
	}
	v, ok := values[handle]
	if !ok || v.Type != fhe.Bool {
		return Verification{}, fmt.Errorf("%w: result %s is not a boolean", fhe.ErrCorruptValue, handle.Hex())
	}
	return Verification{Passed: v.Bool(), Handle: handle, TxHash: sub.TxHash}, nil
}
