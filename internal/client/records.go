package client

import (
	"context"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/session"
	"github.com/TessVincent/prismhealth/models"
)

// AddHealthRecord encrypts v and appends it as a new health record. It
// returns the record id once the transaction is sealed.
func (c *Client) AddHealthRecord(ctx context.Context, v models.HealthValues) (uint64, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, id session.Identity) (uint64, error) {
		enc, err := c.encrypt(ctx, id,
			[]uint64{uint64(v.SystolicBP), uint64(v.DiastolicBP), uint64(v.BloodGlucose), uint64(v.HeartRate), uint64(v.Weight)},
			[]uint8{16, 16, 16, 16, 16},
		)
		if err != nil {
			return 0, err
		}

		sub, err := c.ledger.AddHealthRecord(ctx, models.HealthRecordInput{
			SystolicBP:   enc.Input(0),
			DiastolicBP:  enc.Input(1),
			BloodGlucose: enc.Input(2),
			HeartRate:    enc.Input(3),
			Weight:       enc.Input(4),
		}, models.CallOptions{})
		if err != nil {
			return 0, err
		}
		if _, err = settle(ctx, c, sub); err != nil {
			return 0, err
		}
		return sub.Result, nil
	})
}

func (c *Client) AddMedicationRecord(ctx context.Context, v models.MedicationValues) (uint64, error) {
	if v.Name == "" {
		return 0, models.Errorf(models.ErrEmptyField, "medication name")
	}
	if v.EndDate != 0 && v.StartDate > v.EndDate {
		return 0, models.ErrInvalidDateRange
	}

	return session.Run(ctx, c.guard, func(ctx context.Context, id session.Identity) (uint64, error) {
		enc, err := c.encrypt(ctx, id, []uint64{uint64(v.Dosage), uint64(v.Frequency)}, []uint8{16, 8})
		if err != nil {
			return 0, err
		}

		sub, err := c.ledger.AddMedicationRecord(ctx, models.MedicationRecordInput{
			Name:      v.Name,
			Dosage:    enc.Input(0),
			Frequency: enc.Input(1),
			StartDate: v.StartDate,
			EndDate:   v.EndDate,
		}, models.CallOptions{})
		if err != nil {
			return 0, err
		}
		if _, err = settle(ctx, c, sub); err != nil {
			return 0, err
		}
		return sub.Result, nil
	})
}

func (c *Client) AddExerciseRecord(ctx context.Context, v models.ExerciseValues) (uint64, error) {
	if v.ExerciseType == "" {
		return 0, models.Errorf(models.ErrEmptyField, "exercise type")
	}

	return session.Run(ctx, c.guard, func(ctx context.Context, id session.Identity) (uint64, error) {
		enc, err := c.encrypt(ctx, id, []uint64{uint64(v.Duration), uint64(v.Calories)}, []uint8{16, 16})
		if err != nil {
			return 0, err
		}

		sub, err := c.ledger.AddExerciseRecord(ctx, models.ExerciseRecordInput{
			ExerciseType: v.ExerciseType,
			Duration:     enc.Input(0),
			Calories:     enc.Input(1),
		}, models.CallOptions{})
		if err != nil {
			return 0, err
		}
		if _, err = settle(ctx, c, sub); err != nil {
			return 0, err
		}
		return sub.Result, nil
	})
}

// DeleteHealthRecord tombstones a health record. Deleting twice fails with
// models.ErrRecordDeleted.
func (c *Client) DeleteHealthRecord(ctx context.Context, recordID uint64) error {
	_, err := session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (struct{}, error) {
		sub, err := c.ledger.DeleteHealthRecord(ctx, recordID, models.CallOptions{})
		if err != nil {
			return struct{}{}, err
		}
		_, err = settle(ctx, c, sub)
		return struct{}{}, err
	})
	return err
}

func (c *Client) GetHealthRecord(ctx context.Context, recordID uint64) (models.HealthRecord, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.HealthRecord, error) {
		return c.ledger.GetHealthRecord(ctx, recordID)
	})
}

func (c *Client) GetMedicationRecord(ctx context.Context, recordID uint64) (models.MedicationRecord, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.MedicationRecord, error) {
		return c.ledger.GetMedicationRecord(ctx, recordID)
	})
}

func (c *Client) GetExerciseRecord(ctx context.Context, recordID uint64) (models.ExerciseRecord, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.ExerciseRecord, error) {
		return c.ledger.GetExerciseRecord(ctx, recordID)
	})
}

func (c *Client) CountRecords(ctx context.Context, kind models.RecordKind) (uint64, error) {
	if !kind.Valid() {
		return 0, models.Errorf(models.ErrUnknownRecordKind, "%q", kind)
	}
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (uint64, error) {
		return c.ledger.CountRecords(ctx, kind)
	})
}

// DecryptHealthRecord fetches a health record and opens all five values
// under one grant.
func (c *Client) DecryptHealthRecord(ctx context.Context, recordID uint64) (models.HealthValues, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.HealthValues, error) {
		rec, err := c.ledger.GetHealthRecord(ctx, recordID)
		if err != nil {
			return models.HealthValues{}, err
		}
		values, err := c.decrypt(ctx, rec.Handles()...)
		if err != nil {
			return models.HealthValues{}, err
		}
		return models.HealthValues{
			SystolicBP:   uint16(values[rec.SystolicBP].Value),
			DiastolicBP:  uint16(values[rec.DiastolicBP].Value),
			BloodGlucose: uint16(values[rec.BloodGlucose].Value),
			HeartRate:    uint16(values[rec.HeartRate].Value),
			Weight:       uint16(values[rec.Weight].Value),
		}, nil
	})
}

func (c *Client) DecryptMedicationRecord(ctx context.Context, recordID uint64) (models.MedicationValues, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.MedicationValues, error) {
		rec, err := c.ledger.GetMedicationRecord(ctx, recordID)
		if err != nil {
			return models.MedicationValues{}, err
		}
		values, err := c.decrypt(ctx, rec.Handles()...)
		if err != nil {
			return models.MedicationValues{}, err
		}
		return models.MedicationValues{
			Name:      rec.Name,
			Dosage:    uint16(values[rec.Dosage].Value),
			Frequency: uint8(values[rec.Frequency].Value),
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
		}, nil
	})
}

func (c *Client) DecryptExerciseRecord(ctx context.Context, recordID uint64) (models.ExerciseValues, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (models.ExerciseValues, error) {
		rec, err := c.ledger.GetExerciseRecord(ctx, recordID)
		if err != nil {
			return models.ExerciseValues{}, err
		}
		values, err := c.decrypt(ctx, rec.Handles()...)
		if err != nil {
			return models.ExerciseValues{}, err
		}
		return models.ExerciseValues{
			ExerciseType: rec.ExerciseType,
			Duration:     uint16(values[rec.Duration].Value),
			Calories:     uint16(values[rec.Calories].Value),
		}, nil
	})
}

// DecryptHandle opens one handle the account holds rights on.
func (c *Client) DecryptHandle(ctx context.Context, h fhe.Handle) (fhe.Value, error) {
	return session.Run(ctx, c.guard, func(ctx context.Context, _ session.Identity) (fhe.Value, error) {
		values, err := c.decrypt(ctx, h)
		if err != nil {
			return fhe.Value{}, err
		}
		return values[h], nil
	})
}
