// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

var testOracle = models.OracleDomain{Name: "Decryption", Version: "1", ChainID: testChainID, VerifyingContract: common.HexToAddress("0xd0")}

func testAppConfig(version string) config.App {
	return config.App{
		Version:         version,
		ChainID:         testChainID,
		ContractAddress: testContract.Hex(),
		ProtocolID:      1,
	}
}

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(testAppConfig("1.0.0"), testOracle, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(testAppConfig(""), testOracle, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetLedgerInfo
// ─────────────────────────────────────────────

func TestGetLedgerInfo_ReportsDeployment(t *testing.T) {
	build := models.NewAppBuildInfo("dev", "2026-10-01", "abc123")
	svc, err := NewAppInfoService(testAppConfig("3.1.4"), testOracle, build, logger.Nop())
	require.NoError(t, err)

	info := svc.GetLedgerInfo(context.Background())

	assert.Equal(t, uint64(testChainID), info.ChainID)
	assert.Equal(t, testContract, info.ContractAddress)
	assert.Equal(t, uint64(1), info.ProtocolID)
	assert.Equal(t, testOracle, info.Oracle)
	assert.Equal(t, "3.1.4", info.Build.Version, "configured version wins over the linker one")
	assert.Equal(t, "abc123", info.Build.Commit)
}

func TestGetLedgerInfo_DifferentInstances_Independent(t *testing.T) {
	svc1, err := NewAppInfoService(testAppConfig("1.0.0"), testOracle, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(testAppConfig("2.0.0"), testOracle, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetLedgerInfo(context.Background()).Build.Version)
	assert.Equal(t, "2.0.0", svc2.GetLedgerInfo(context.Background()).Build.Version)
}

// ─────────────────────────────────────────────
// GetProtocol
// ─────────────────────────────────────────────

func TestGetProtocol_ReturnsConfiguredID(t *testing.T) {
	cfg := testAppConfig("1.0.0")
	cfg.ProtocolID = 7
	svc, err := NewAppInfoService(cfg, testOracle, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.ProtocolInfo{ProtocolID: 7}, svc.GetProtocol(context.Background()))
}
