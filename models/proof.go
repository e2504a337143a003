package models

import "github.com/ethereum/go-ethereum/common"

// Verification types used by the bundled flows. Any non-empty string is accepted.
const (
	VerificationInsurance           = "insurance"
	VerificationMedicalConsultation = "medical_consultation"
	VerificationRange               = "range_verification"
)

type VerificationProof struct {
	ID               uint64         `json:"id"`
	Owner            common.Address `json:"owner"`
	Timestamp        int64          `json:"timestamp"`
	VerificationType string         `json:"verificationType"`
	Result           common.Hash    `json:"result"`
	TransactionHash  common.Hash    `json:"transactionHash"`
}

type ProofInput struct {
	VerificationType string      `json:"verificationType"`
	Result           common.Hash `json:"result"`
}
