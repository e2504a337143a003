// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to a ledger node. It speaks the
// ledger's JSON API under /api/v1 and the coprocessor's relayer API under
// /relayer/v1.
//
// Error bodies are mapped back to the ledger error sentinels in models, so a
// caller can test errors.Is(err, models.ErrRecordDeleted) on either side of
// the wire. Transport conditions with no ledger meaning map to the sentinels
// in errors.go (e.g. [ErrUnauthorized] for 401, [ErrReceiptPending] while a
// transaction is not sealed).
package adapter

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerAdapter calls the ledger node on behalf of one account.
type LedgerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	Token() string

	LedgerInfo(ctx context.Context) (models.LedgerInfo, error)
	Protocol(ctx context.Context) (models.ProtocolInfo, error)
	// Login exchanges a signed challenge for a session token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	AddHealthRecord(ctx context.Context, in models.HealthRecordInput, opts models.CallOptions) (models.Submission[uint64], error)
	AddMedicationRecord(ctx context.Context, in models.MedicationRecordInput, opts models.CallOptions) (models.Submission[uint64], error)
	AddExerciseRecord(ctx context.Context, in models.ExerciseRecordInput, opts models.CallOptions) (models.Submission[uint64], error)
	DeleteHealthRecord(ctx context.Context, id uint64, opts models.CallOptions) (models.Submission[uint64], error)
	GetHealthRecord(ctx context.Context, id uint64) (models.HealthRecord, error)
	GetMedicationRecord(ctx context.Context, id uint64) (models.MedicationRecord, error)
	GetExerciseRecord(ctx context.Context, id uint64) (models.ExerciseRecord, error)
	CountRecords(ctx context.Context, kind models.RecordKind) (uint64, error)

	ComputeScore(ctx context.Context, opts models.CallOptions) (models.Submission[models.HealthScore], error)
	StoreScore(ctx context.Context, opts models.CallOptions) (models.Submission[models.HealthScore], error)
	GetScore(ctx context.Context) (models.HealthScore, error)
	VerifyInRange(ctx context.Context, in models.RangeVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error)
	VerifyScoreThreshold(ctx context.Context, in models.ThresholdVerificationInput, opts models.CallOptions) (models.Submission[common.Hash], error)
	// Simulate runs a mutating call at path without committing it and
	// returns its result exactly as the ledger encoded it.
	Simulate(ctx context.Context, path string, body any) (string, error)

	GenerateProof(ctx context.Context, in models.ProofInput, opts models.CallOptions) (models.Submission[uint64], error)
	GetProof(ctx context.Context, id uint64) (models.VerificationProof, error)
	CountProofs(ctx context.Context) (uint64, error)

	// GetReceipt fails with ErrReceiptPending until the transaction is sealed.
	GetReceipt(ctx context.Context, hash common.Hash) (models.Receipt, error)
	// WaitForReceipt polls GetReceipt until the transaction is sealed or the
	// finality timeout passes.
	WaitForReceipt(ctx context.Context, hash common.Hash) (models.Receipt, error)
}

// RelayerAdapter calls the coprocessor's input relayer and decryption oracle.
type RelayerAdapter interface {
	EncryptInputs(ctx context.Context, req models.EncryptInputsRequest) (models.EncryptInputsResponse, error)
	UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error)
}
