package service

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/validators"
	"github.com/TessVincent/prismhealth/models"
)

// gatewayService fronts the coprocessor for clients: it encrypts their
// inputs and runs the rate-limited user decryption oracle.
type gatewayService struct {
	engine    fhe.Engine
	validator validators.Validator
	limiter   *rate.Limiter

	logger *logger.Logger
}

func NewGatewayService(engine fhe.Engine, cfg config.Engine, logger *logger.Logger) GatewayService {
	return &gatewayService{
		engine:    engine,
		validator: validators.NewLedgerValidator(),
		limiter:   rate.NewLimiter(rate.Limit(cfg.OracleRateLimit), cfg.OracleBurst),
		logger:    logger,
	}
}

func (g *gatewayService) EncryptInputs(ctx context.Context, req models.EncryptInputsRequest) (models.EncryptInputsResponse, error) {
	if err := g.validator.Validate(ctx, req); err != nil {
		return models.EncryptInputsResponse{}, err
	}

	types := make([]fhe.Type, len(req.Bits))
	for i, bits := range req.Bits {
		t, err := fhe.TypeForBits(bits)
		if err != nil {
			return models.EncryptInputsResponse{}, models.Errorf(models.ErrValueOutOfDomain, "input %d: %v", i, err)
		}
		types[i] = t
	}

	batch, err := g.engine.EncryptInputs(ctx, req.Contract, req.User, req.Values, types)
	if err != nil {
		return models.EncryptInputsResponse{}, err
	}
	return models.EncryptInputsResponse{Handles: batch.Handles, InputProof: batch.Proof}, nil
}

// UserDecrypt rejects requests over the oracle rate before any signature
// work is done.
func (g *gatewayService) UserDecrypt(ctx context.Context, req models.UserDecryptRequest) (models.UserDecryptResponse, error) {
	if !g.limiter.Allow() {
		logger.FromContext(ctx).Warn().
			Str("func", "gatewayService.UserDecrypt").
			Str("user", req.UserAddress.Hex()).
			Msg("decryption oracle rate limit exceeded")
		return models.UserDecryptResponse{}, ErrRateLimited
	}
	return g.engine.UserDecrypt(ctx, req)
}
