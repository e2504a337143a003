// Package grpc is the gRPC transport of the ledger node. It serves the
// standard health checking protocol so orchestrators can check the node
// without a session token.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/service"
)

// LedgerServiceName is the health service name clients query for the ledger
// API. The empty name reports the node as a whole.
const LedgerServiceName = "prismhealth.v1.Ledger"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the node lifecycle: SERVING
// once constructed, NOT_SERVING after Shutdown.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting the ledger as serving.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(true)
	return h
}

// Register attaches every gRPC service of the handler to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing flips the ledger and node health status.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(LedgerServiceName, status)
	h.logger.Info().Str("status", status.String()).Msg("gRPC health status changed")
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
