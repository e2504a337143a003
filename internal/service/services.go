package service

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/models"
)

// Services bundles every ledger and relayer service the transport layer
// serves.
type Services struct {
	RecordService  RecordService
	ScoreService   ScoreService
	ProofService   ProofService
	ReceiptService ReceiptService
	AuthService    AuthService
	AppInfoService AppInfoService
	GatewayService GatewayService
}

// NewServices wires the services over storages and the coprocessor. Record,
// score and proof services are wrapped with input validation.
func NewServices(storages *store.Storages, coprocessor *fhe.Coprocessor, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	contract := common.HexToAddress(cfg.App.ContractAddress)

	appInfo, err := NewAppInfoService(cfg.App, coprocessor.Domain(), build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		RecordService:  NewRecordValidationService().Wrap(NewRecordService(storages, coprocessor, contract, logger)),
		ScoreService:   NewScoreValidationService().Wrap(NewScoreService(storages, coprocessor, contract, logger)),
		ProofService:   NewProofValidationService().Wrap(NewProofService(storages, coprocessor, contract, logger)),
		ReceiptService: NewReceiptService(storages, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		GatewayService: NewGatewayService(coprocessor, cfg.Engine, logger),
	}, nil
}
