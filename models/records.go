package models

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RecordKind identifies one of the three per-owner record collections.
type RecordKind string

const (
	KindHealth     RecordKind = "health"
	KindMedication RecordKind = "medication"
	KindExercise   RecordKind = "exercise"
)

// Valid reports whether k names a known record collection.
func (k RecordKind) Valid() bool {
	switch k {
	case KindHealth, KindMedication, KindExercise:
		return true
	}
	return false
}

// Indicator selects one of the five health record fields.
type Indicator uint8

const (
	IndicatorSystolicBP Indicator = iota
	IndicatorDiastolicBP
	IndicatorBloodGlucose
	IndicatorHeartRate
	IndicatorWeight
)

var indicatorLabels = [...]string{
	IndicatorSystolicBP:   "Systolic BP",
	IndicatorDiastolicBP:  "Diastolic BP",
	IndicatorBloodGlucose: "Blood Glucose",
	IndicatorHeartRate:    "Heart Rate",
	IndicatorWeight:       "Weight",
}

func (i Indicator) Valid() bool {
	return int(i) < len(indicatorLabels)
}

func (i Indicator) String() string {
	if !i.Valid() {
		return "Unknown"
	}
	return indicatorLabels[i]
}

// HealthRecord holds five 16-bit ciphertext handles. Timestamp is plaintext.
type HealthRecord struct {
	ID           uint64         `json:"id"`
	Owner        common.Address `json:"owner"`
	Timestamp    int64          `json:"timestamp"`
	SystolicBP   common.Hash    `json:"systolicBP"`
	DiastolicBP  common.Hash    `json:"diastolicBP"`
	BloodGlucose common.Hash    `json:"bloodGlucose"`
	HeartRate    common.Hash    `json:"heartRate"`
	Weight       common.Hash    `json:"weight"`
	Deleted      bool           `json:"-"`
}

// Field returns the handle stored for the given indicator.
func (r HealthRecord) Field(i Indicator) (common.Hash, error) {
	switch i {
	case IndicatorSystolicBP:
		return r.SystolicBP, nil
	case IndicatorDiastolicBP:
		return r.DiastolicBP, nil
	case IndicatorBloodGlucose:
		return r.BloodGlucose, nil
	case IndicatorHeartRate:
		return r.HeartRate, nil
	case IndicatorWeight:
		return r.Weight, nil
	}
	return common.Hash{}, Errorf(ErrUnknownIndicator, "%d", i)
}

// Handles lists every ciphertext handle of the record in indicator order.
func (r HealthRecord) Handles() []common.Hash {
	return []common.Hash{r.SystolicBP, r.DiastolicBP, r.BloodGlucose, r.HeartRate, r.Weight}
}

type MedicationRecord struct {
	ID        uint64         `json:"id"`
	Owner     common.Address `json:"owner"`
	Timestamp int64          `json:"timestamp"`
	Name      string         `json:"name"`
	Dosage    common.Hash    `json:"dosage"`
	Frequency common.Hash    `json:"frequency"`
	StartDate int64          `json:"startDate"`
	// EndDate is 0 for a medication still being taken.
	EndDate   int64          `json:"endDate"`
}

func (r MedicationRecord) Handles() []common.Hash {
	return []common.Hash{r.Dosage, r.Frequency}
}

type ExerciseRecord struct {
	ID           uint64         `json:"id"`
	Owner        common.Address `json:"owner"`
	Timestamp    int64          `json:"timestamp"`
	ExerciseType string         `json:"exerciseType"`
	Duration     common.Hash    `json:"duration"`
	Calories     common.Hash    `json:"calories"`
}

func (r ExerciseRecord) Handles() []common.Hash {
	return []common.Hash{r.Duration, r.Calories}
}

// ExternalInput is a handle produced by the relayer together with the proof
// that it was correctly encrypted for (contract, user).
type ExternalInput struct {
	Handle common.Hash   `json:"handle"`
	Proof  hexutil.Bytes `json:"proof"`
}

type HealthRecordInput struct {
	SystolicBP   ExternalInput `json:"systolicBP"`
	DiastolicBP  ExternalInput `json:"diastolicBP"`
	BloodGlucose ExternalInput `json:"bloodGlucose"`
	HeartRate    ExternalInput `json:"heartRate"`
	Weight       ExternalInput `json:"weight"`
}

func (in HealthRecordInput) Inputs() []ExternalInput {
	return []ExternalInput{in.SystolicBP, in.DiastolicBP, in.BloodGlucose, in.HeartRate, in.Weight}
}

type MedicationRecordInput struct {
	Name      string        `json:"name"`
	Dosage    ExternalInput `json:"dosage"`
	Frequency ExternalInput `json:"frequency"`
	StartDate int64         `json:"startDate"`
	EndDate   int64         `json:"endDate"`
}

type ExerciseRecordInput struct {
	ExerciseType string        `json:"exerciseType"`
	Duration     ExternalInput `json:"duration"`
	Calories     ExternalInput `json:"calories"`
}

// HealthValues are the plaintext measurements a client encrypts before
// appending a health record.
type HealthValues struct {
	SystolicBP   uint16
	DiastolicBP  uint16
	BloodGlucose uint16
	HeartRate    uint16
	Weight       uint16
}

type MedicationValues struct {
	Name      string
	Dosage    uint16
	Frequency uint8
	StartDate int64
	EndDate   int64
}

type ExerciseValues struct {
	ExerciseType string
	Duration     uint16
	Calories     uint16
}
