// Package handler assembles the transport handlers of the ledger node. Only
// the transports with a configured address are built.
package handler

import (
	"errors"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/handler/grpc"
	"github.com/TessVincent/prismhealth/internal/handler/http"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/service"
)

// errNoHandlersAreCreated means the node was configured without an HTTP or
// gRPC address and would serve nothing.
var errNoHandlersAreCreated = errors.New("no handlers are created: set an http or grpc address")

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// Draining tells health checkers the node is going away. It is called before
// the servers stop accepting requests.
func (h *Handlers) Draining() {
	if h.GRPC != nil {
		h.GRPC.Shutdown()
	}
}
