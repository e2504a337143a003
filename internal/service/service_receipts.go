package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

type receiptService struct {
	transactions store.TransactionRepository
	now          func() time.Time

	logger *logger.Logger
}

func NewReceiptService(storages *store.Storages, logger *logger.Logger) ReceiptService {
	return &receiptService{
		transactions: storages.Transactions,
		now:          time.Now,
		logger:       logger,
	}
}

// GetReceipt only answers for sealed transactions, so a receipt a client
// sees is final.
func (s *receiptService) GetReceipt(ctx context.Context, hash common.Hash) (models.Receipt, error) {
	tx, err := s.transactions.GetTransaction(ctx, hash)
	if store.IsNotFound(err) {
		return models.Receipt{}, ErrReceiptNotFound
	}
	if err != nil {
		return models.Receipt{}, err
	}
	if !tx.Finalized() {
		return models.Receipt{}, ErrReceiptNotFound
	}
	return tx, nil
}

func (s *receiptService) SealPending(ctx context.Context) (models.Block, error) {
	block, err := s.transactions.SealPending(ctx, s.now().Unix())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "receiptService.SealPending").Msg("failed to seal block")
		return models.Block{}, err
	}
	if block.Transactions > 0 {
		logger.FromContext(ctx).Info().
			Uint64("block", block.Number).
			Int("transactions", block.Transactions).
			Msg("block sealed")
	}
	return block, nil
}
