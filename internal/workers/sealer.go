// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/service"
)

// Sealer closes a block over the pending transactions every interval. Until a
// transaction is sealed its receipt is not available, so the interval is the
// confirmation latency clients observe.
type Sealer struct {
	receipts service.ReceiptService
	interval time.Duration

	logger *logger.Logger
}

func NewSealer(receipts service.ReceiptService, interval time.Duration, logger *logger.Logger) *Sealer {
	return &Sealer{
		receipts: receipts,
		interval: interval,
		logger:   logger,
	}
}

// Run seals until ctx is done. A failed seal is logged and retried on the
// next tick; the pending transactions stay pending.
func (s *Sealer) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("sealer started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("sealer stopped")
			return nil
		case <-ticker.C:
			s.seal(ctx)
		}
	}
}

func (s *Sealer) seal(ctx context.Context) {
	block, err := s.receipts.SealPending(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("sealing pending transactions failed")
		}
		return
	}
	if block.Transactions == 0 {
		return
	}

	s.logger.Debug().
		Uint64("block", block.Number).
		Int("transactions", block.Transactions).
		Msg("block sealed")
}
