package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/ledger"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

// proofService is the verification proof registry.
type proofService struct {
	executor *executor
	proofs   store.ProofRepository

	logger *logger.Logger
}

func NewProofService(storages *store.Storages, engine fhe.Engine, contract common.Address, logger *logger.Logger) ProofService {
	return &proofService{
		executor: newExecutor(storages.UnitOfWork, engine, contract),
		proofs:   storages.Proofs,
		logger:   logger,
	}
}

// GenerateProof registers a proof over a result handle the caller can
// already decrypt.
func (s *proofService) GenerateProof(ctx context.Context, owner common.Address, in models.ProofInput, opts models.CallOptions) (models.Submission[uint64], error) {
	var id uint64
	hash, err := s.executor.execute(ctx, owner, "generateVerificationProof", in, opts, func(c *call) error {
		allowed, err := c.engine.IsAllowed(ctx, in.Result, owner)
		if err != nil {
			return err
		}
		if !allowed {
			return models.Errorf(models.ErrMissingRights, "%s", in.Result.Hex())
		}

		id, err = c.repos.Proofs.AppendProof(ctx, models.VerificationProof{
			Owner:            owner,
			Timestamp:        c.now,
			VerificationType: in.VerificationType,
			Result:           in.Result,
			TransactionHash:  c.txHash,
		})
		if err != nil {
			return err
		}

		c.allow(in.Result)
		return c.emit(ledger.EventVerificationProofGenerated, owner, new(big.Int).SetUint64(id), in.VerificationType)
	})
	if err != nil {
		return models.Submission[uint64]{}, err
	}
	return submission(hash, opts, id), nil
}

func (s *proofService) GetProof(ctx context.Context, owner common.Address, id uint64) (models.VerificationProof, error) {
	proof, err := s.proofs.GetProof(ctx, owner, id)
	if store.IsNotFound(err) {
		return models.VerificationProof{}, models.Errorf(models.ErrIndexOutOfRange, "proof %d", id)
	}
	return proof, err
}

func (s *proofService) CountProofs(ctx context.Context, owner common.Address) (uint64, error) {
	return s.proofs.CountProofs(ctx, owner)
}
