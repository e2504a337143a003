package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers of a ledger node.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewSealer(services.ReceiptService, cfg.SealInterval, logger),
	}}
}

// Run runs every worker concurrently. The first failure cancels the rest.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
