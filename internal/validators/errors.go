package validators

import (
	"errors"
	"fmt"

	"github.com/TessVincent/prismhealth/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMedicationName   = fmt.Errorf("%w: medication name", models.ErrEmptyField)
	ErrEmptyExerciseType     = fmt.Errorf("%w: exercise type", models.ErrEmptyField)
	ErrEmptyVerificationType = fmt.Errorf("%w: verification type", models.ErrEmptyField)
	ErrEmptyInputs           = fmt.Errorf("%w: no values to encrypt", models.ErrEmptyField)
	ErrEmptySignature        = fmt.Errorf("%w: signature", models.ErrEmptyField)
	ErrZeroHandle            = fmt.Errorf("%w: zero handle", models.ErrInvalidHandle)
	ErrMissingInputProof     = fmt.Errorf("%w: missing proof", models.ErrInvalidInputProof)
	ErrZeroAddress           = fmt.Errorf("%w: zero address", models.ErrInvalidAddress)
	ErrBitsMismatch          = fmt.Errorf("%w: values and bits differ in length", models.ErrValueOutOfDomain)
	ErrUnsupportedBits       = fmt.Errorf("%w: unsupported bit width", models.ErrValueOutOfDomain)
)
