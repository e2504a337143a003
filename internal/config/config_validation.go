// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// validate checks that the final merged [StructuredConfig] can start a node.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}
	if !common.IsHexAddress(cfg.App.ContractAddress) {
		return fmt.Errorf("%w: contract address %q", ErrInvalidAppConfigs, cfg.App.ContractAddress)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres:
	case DriverSQLite:
		// engine ciphertexts and grants on sqlite live in memory and would not survive a restart
		return fmt.Errorf("%w: the node needs postgres, sqlite is for in-process ledgers only", ErrInvalidStorageConfigs)
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Engine.Secret == "" || cfg.Engine.InputProofKey == "" {
		return fmt.Errorf("%w: engine secret and input proof key are required", ErrInvalidEngineConfigs)
	}
	if !common.IsHexAddress(cfg.Engine.OracleAddress) {
		return fmt.Errorf("%w: oracle address %q", ErrInvalidEngineConfigs, cfg.Engine.OracleAddress)
	}

	if cfg.Workers.SealInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, errNoServerAddress)
	}
	if cfg.RequestTimeout <= 0 || cfg.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.KeyFile == "" || cfg.FinalityTimeout <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
