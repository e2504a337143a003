// Package ledgertest runs a complete ledger node in process for tests: a
// temporary sqlite database, a real coprocessor, the HTTP API and a fast
// sealer.
package ledgertest

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/TessVincent/prismhealth/internal/config"
	kc "github.com/TessVincent/prismhealth/internal/crypto"
	"github.com/TessVincent/prismhealth/internal/fhe"
	ledgerhttp "github.com/TessVincent/prismhealth/internal/handler/http"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/service"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/internal/workers"
	"github.com/TessVincent/prismhealth/models"
)

const (
	ChainID         = 31337
	ContractAddress = "0x00000000000000000000000000000000000000c0"
	OracleAddress   = "0x00000000000000000000000000000000000000d0"

	SealInterval = 10 * time.Millisecond
)

// Config is the node configuration Start uses.
func Config() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:    "ledgertest-secret",
			TokenIssuer:     "prismhealth-test",
			TokenDuration:   time.Hour,
			ChainID:         ChainID,
			ContractAddress: ContractAddress,
			ProtocolID:      config.SupportedProtocolID,
			ChallengeWindow: 5 * time.Minute,
			Version:         "test",
		},
		Engine: config.Engine{
			Secret:          "engine-secret",
			InputProofKey:   "proof-key",
			OracleAddress:   OracleAddress,
			OracleRateLimit: 1000,
			OracleBurst:     1000,
			MaxGrantDays:    365,
		},
	}
}

// Start runs a node until the test ends and returns its base URL.
func Start(t testing.TB) string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	db, err := store.NewDB(ctx, config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "ledger.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	cfg := Config()
	storages := store.NewStorages(db)
	domain := fhe.NewDomain(cfg.App.ChainID, common.HexToAddress(cfg.Engine.OracleAddress))
	coprocessor := fhe.NewCoprocessor(storages.Engine, kc.NewKeyChain(), cfg.Engine, domain, logger.Nop())

	services, err := service.NewServices(storages, coprocessor, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	sealer := workers.NewSealer(services.ReceiptService, SealInterval, logger.Nop())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sealer.Run(ctx)
	}()

	srv := httptest.NewServer(ledgerhttp.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-done
	})
	return srv.URL
}
