package models

import "github.com/ethereum/go-ethereum/common"

// HealthScore is the encrypted composite score. TotalScore is 16-bit, the
// dimension sub-scores and RiskLevel are 8-bit.
type HealthScore struct {
	TotalScore     common.Hash `json:"totalScore"`
	Cardiovascular common.Hash `json:"cardiovascular"`
	Metabolic      common.Hash `json:"metabolic"`
	Exercise       common.Hash `json:"exercise"`
	Medication     common.Hash `json:"medication"`
	RiskLevel      common.Hash `json:"riskLevel"`
	Timestamp      int64       `json:"timestamp"`
}

func (s HealthScore) Handles() []common.Hash {
	return []common.Hash{s.TotalScore, s.Cardiovascular, s.Metabolic, s.Exercise, s.Medication, s.RiskLevel}
}

// RangeVerificationInput asks whether Min <= indicator <= Max for a record.
type RangeVerificationInput struct {
	RecordID      uint64        `json:"recordId"`
	IndicatorType Indicator     `json:"indicatorType"`
	Min           ExternalInput `json:"min"`
	Max           ExternalInput `json:"max"`
}

// ThresholdVerificationInput asks whether the stored total score is >= MinScore.
type ThresholdVerificationInput struct {
	MinScore ExternalInput `json:"minScore"`
}

// ScoreValues is a decrypted HealthScore.
type ScoreValues struct {
	TotalScore     uint16
	Cardiovascular uint8
	Metabolic      uint8
	Exercise       uint8
	Medication     uint8
	RiskLevel      uint8
	Timestamp      int64
}
