package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService is the encrypted record store. Appends and deletes are ledger
// transactions; reads never decrypt.
type RecordService interface {
	AddHealthRecord(ctx context.Context, owner common.Address, in models.HealthRecordInput, opts models.CallOptions) (models.Submission[uint64], error)
	AddMedicationRecord(ctx context.Context, owner common.Address, in models.MedicationRecordInput, opts models.CallOptions) (models.Submission[uint64], error)
	AddExerciseRecord(ctx context.Context, owner common.Address, in models.ExerciseRecordInput, opts models.CallOptions) (models.Submission[uint64], error)

	GetHealthRecord(ctx context.Context, owner common.Address, id uint64) (models.HealthRecord, error)
	GetMedicationRecord(ctx context.Context, owner common.Address, id uint64) (models.MedicationRecord, error)
	GetExerciseRecord(ctx context.Context, owner common.Address, id uint64) (models.ExerciseRecord, error)

	// DeleteHealthRecord tombstones a health record. It is one-way.
	DeleteHealthRecord(ctx context.Context, owner common.Address, id uint64, opts models.CallOptions) (models.Submission[uint64], error)
	CountRecords(ctx context.Context, owner common.Address, kind models.RecordKind) (uint64, error)
}

// ScoreService computes over ciphertexts: the composite health score and the
// range and threshold checks.
type ScoreService interface {
	ComputeScore(ctx context.Context, owner common.Address, opts models.CallOptions) (models.Submission[models.HealthScore], error)
	StoreScore(ctx context.Context, owner common.Address, opts models.CallOptions) (models.Submission[models.HealthScore], error)
	GetScore(ctx context.Context, owner common.Address) (models.HealthScore, error)

	VerifyInRange(ctx context.Context, owner common.Address, in models.RangeVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error)
	VerifyScoreThreshold(ctx context.Context, owner common.Address, in models.ThresholdVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error)
}

// ProofService is the verification proof registry.
type ProofService interface {
	GenerateProof(ctx context.Context, owner common.Address, in models.ProofInput, opts models.CallOptions) (models.Submission[uint64], error)
	GetProof(ctx context.Context, owner common.Address, id uint64) (models.VerificationProof, error)
	CountProofs(ctx context.Context, owner common.Address) (uint64, error)
}

type ReceiptService interface {
	// GetReceipt returns ErrReceiptNotFound until the transaction is sealed.
	GetReceipt(ctx context.Context, hash common.Hash) (models.Receipt, error)
	// SealPending closes a block over every pending transaction.
	SealPending(ctx context.Context) (models.Block, error)
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetLedgerInfo(ctx context.Context) models.LedgerInfo
	GetProtocol(ctx context.Context) models.ProtocolInfo
}

// GatewayService is the coprocessor's relayer: input encryption and the
// user decryption oracle.
type GatewayService interface {
	EncryptInputs(ctx context.Context, req models.EncryptInputsRequest) (models.EncryptInputsResponse, error)
	UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error)
}
