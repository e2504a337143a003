package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/handler"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/workers"
)

const shutdownTimeout = 15 * time.Second

var errNoServersAreCreated = errors.New("no servers are created")

type server struct {
	handlers   *handler.Handlers
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	logger *logger.Logger
}

// NewServer builds the transports that have a handler. workers may be nil.
func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		handlers: handlers,
		workers:  workers,
		logger:   logger,
	}

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until ctx is cancelled or a stop signal arrives, then
// shuts every transport down. The workers stop with the servers.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(func() error { return s.httpServer.RunServer(ctx) })
	}
	if s.gRPCServer != nil {
		g.Go(func() error { return s.gRPCServer.RunServer(ctx) })
	}
	if s.workers != nil {
		g.Go(func() error { return s.workers.Run(ctx) })
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	s.handlers.Draining()

	var errs []error
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
