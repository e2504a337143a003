package store

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository persists the three per-owner record collections. Ids are
// assigned from zero per owner and kind, in append order.
type RecordRepository interface {
	AppendHealthRecord(ctx context.Context, rec models.HealthRecord) (uint64, error)
	GetHealthRecord(ctx context.Context, owner common.Address, id uint64) (models.HealthRecord, error)
	// LatestHealthRecord skips tombstoned records.
	LatestHealthRecord(ctx context.Context, owner common.Address) (models.HealthRecord, error)
	MarkHealthRecordDeleted(ctx context.Context, owner common.Address, id uint64) error

	AppendMedicationRecord(ctx context.Context, rec models.MedicationRecord) (uint64, error)
	GetMedicationRecord(ctx context.Context, owner common.Address, id uint64) (models.MedicationRecord, error)
	LatestMedicationRecord(ctx context.Context, owner common.Address) (models.MedicationRecord, error)

	AppendExerciseRecord(ctx context.Context, rec models.ExerciseRecord) (uint64, error)
	GetExerciseRecord(ctx context.Context, owner common.Address, id uint64) (models.ExerciseRecord, error)
	LatestExerciseRecord(ctx context.Context, owner common.Address) (models.ExerciseRecord, error)

	// Count includes tombstoned health records.
	Count(ctx context.Context, owner common.Address, kind models.RecordKind) (uint64, error)
}

// ScoreRepository keeps at most one score per owner.
type ScoreRepository interface {
	SaveScore(ctx context.Context, owner common.Address, score models.HealthScore) error
	GetScore(ctx context.Context, owner common.Address) (models.HealthScore, error)
}

type ProofRepository interface {
	AppendProof(ctx context.Context, proof models.VerificationProof) (uint64, error)
	GetProof(ctx context.Context, owner common.Address, id uint64) (models.VerificationProof, error)
	CountProofs(ctx context.Context, owner common.Address) (uint64, error)
}

// TransactionRepository stores transactions with their event logs and seals
// pending ones into blocks.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, tx models.Transaction) error
	GetTransaction(ctx context.Context, hash common.Hash) (models.Transaction, error)
	// SealPending assigns every unsealed transaction to a new block. It
	// returns a zero Block when nothing was pending.
	SealPending(ctx context.Context, sealedAt int64) (models.Block, error)
}

// UnitOfWork runs fn against repositories bound to one database
// transaction. The transaction commits when fn succeeds, unless rollback is
// set, in which case everything fn did is discarded.
type UnitOfWork interface {
	RunInTx(ctx context.Context, rollback bool, fn func(Repositories) error) error
}
