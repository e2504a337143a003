package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

type appInfoService struct {
	info models.LedgerInfo

	logger *logger.Logger
}

// NewAppInfoService fixes everything a client discovers about this node at
// construction time: the chain, the contract, the confidential protocol and
// the decryption oracle's signing domain.
func NewAppInfoService(cfg config.App, oracle models.OracleDomain, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	build.Version = cfg.Version

	return &appInfoService{
		info: models.LedgerInfo{
			ChainID:         cfg.ChainID,
			ContractAddress: common.HexToAddress(cfg.ContractAddress),
			ProtocolID:      cfg.ProtocolID,
			Oracle:          oracle,
			Build:           build,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetLedgerInfo(ctx context.Context) models.LedgerInfo {
	return s.info
}

func (s *appInfoService) GetProtocol(ctx context.Context) models.ProtocolInfo {
	return models.ProtocolInfo{ProtocolID: s.info.ProtocolID}
}
