package validators

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldInputs targets every encrypted input of a request.
	FieldInputs = "inputs"

	// FieldName targets the medication name.
	FieldName = "name"

	// FieldDateRange targets startDate <= endDate.
	FieldDateRange = "date_range"

	// FieldExerciseType targets the free-form exercise label.
	FieldExerciseType = "exercise_type"

	// FieldIndicator targets the indicator selector of a range check.
	FieldIndicator = "indicator"

	FieldVerificationType = "verification_type"

	// FieldResult targets the handle a proof is issued for.
	FieldResult = "result"

	FieldAddresses = "addresses"
	FieldValues    = "values"
	FieldSignature = "signature"
)

// LedgerValidator checks every request the ledger and the relayer accept.
type LedgerValidator struct{}

func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HealthRecordInput:
		return v.validateHealthRecord(value, fields...)
	case *models.HealthRecordInput:
		return v.validateHealthRecord(*value, fields...)

	case models.MedicationRecordInput:
		return v.validateMedicationRecord(value, fields...)
	case *models.MedicationRecordInput:
		return v.validateMedicationRecord(*value, fields...)

	case models.ExerciseRecordInput:
		return v.validateExerciseRecord(value, fields...)
	case *models.ExerciseRecordInput:
		return v.validateExerciseRecord(*value, fields...)

	case models.RangeVerificationInput:
		return v.validateRangeVerification(value, fields...)

	case models.ThresholdVerificationInput:
		return validateExternalInputs(value.MinScore)

	case models.ProofInput:
		return v.validateProof(value, fields...)

	case models.EncryptInputsRequest:
		return v.validateEncryptInputs(value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)

	default:
		return ErrUnsupportedType
	}
}

func validateExternalInputs(inputs ...models.ExternalInput) error {
	for i, in := range inputs {
		if in.Handle == (common.Hash{}) {
			return fmt.Errorf("input %d: %w", i, ErrZeroHandle)
		}
		if len(in.Proof) == 0 {
			return fmt.Errorf("input %d: %w", i, ErrMissingInputProof)
		}
	}
	return nil
}

func (v *LedgerValidator) validateHealthRecord(in models.HealthRecordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInputs}
	}

	for _, f := range fields {
		switch f {
		case FieldInputs:
			if err := validateExternalInputs(in.Inputs()...); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LedgerValidator) validateMedicationRecord(in models.MedicationRecordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDateRange, FieldInputs}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if in.Name == "" {
				return ErrEmptyMedicationName
			}
		case FieldDateRange:
			// EndDate 0 is an ongoing medication
			if in.EndDate != 0 && in.StartDate > in.EndDate {
				return models.Errorf(models.ErrInvalidDateRange, "%d > %d", in.StartDate, in.EndDate)
			}
		case FieldInputs:
			if err := validateExternalInputs(in.Dosage, in.Frequency); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LedgerValidator) validateExerciseRecord(in models.ExerciseRecordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExerciseType, FieldInputs}
	}

	for _, f := range fields {
		switch f {
		case FieldExerciseType:
			if in.ExerciseType == "" {
				return ErrEmptyExerciseType
			}
		case FieldInputs:
			if err := validateExternalInputs(in.Duration, in.Calories); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LedgerValidator) validateRangeVerification(in models.RangeVerificationInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIndicator, FieldInputs}
	}

	for _, f := range fields {
		switch f {
		case FieldIndicator:
			if !in.IndicatorType.Valid() {
				return models.Errorf(models.ErrUnknownIndicator, "%d", in.IndicatorType)
			}
		case FieldInputs:
			if err := validateExternalInputs(in.Min, in.Max); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LedgerValidator) validateProof(in models.ProofInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVerificationType, FieldResult}
	}

	for _, f := range fields {
		switch f {
		case FieldVerificationType:
			if in.VerificationType == "" {
				return ErrEmptyVerificationType
			}
		case FieldResult:
			if in.Result == (common.Hash{}) {
				return ErrZeroHandle
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LedgerValidator) validateEncryptInputs(req models.EncryptInputsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddresses, FieldValues}
	}

	for _, f := range fields {
		switch f {
		case FieldAddresses:
			if req.Contract == (common.Address{}) || req.User == (common.Address{}) {
				return ErrZeroAddress
			}
		case FieldValues:
			if len(req.Values) == 0 {
				return ErrEmptyInputs
			}
			if len(req.Values) != len(req.Bits) {
				return ErrBitsMismatch
			}
			for i, bits := range req.Bits {
				if bits != 1 && bits != 8 && bits != 16 {
					return fmt.Errorf("value %d: %w: %d", i, ErrUnsupportedBits, bits)
				}
				if req.Values[i] >= 1<<bits {
					return models.Errorf(models.ErrValueOutOfDomain, "value %d: %d does not fit %d bits", i, req.Values[i], bits)
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *LedgerValidator) validateLogin(req models.LoginRequest) error {
	if req.Address == (common.Address{}) {
		return ErrZeroAddress
	}
	if len(req.Signature) == 0 {
		return ErrEmptySignature
	}
	return nil
}
