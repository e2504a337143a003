package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:    "sign",
			TokenDuration:   time.Hour,
			ContractAddress: "0x00000000000000000000000000000000000000c0",
		},
		Storage: Storage{DB: DB{DSN: "postgres://ledger@localhost/ledger", Driver: DriverPostgres}},
		Engine: Engine{
			Secret:        "secret",
			InputProofKey: "proof",
			OracleAddress: "0x00000000000000000000000000000000000000d0",
		},
		Workers: Workers{SealInterval: time.Second},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "flags"}},
		&StructuredConfig{App: App{TokenIssuer: "env", Version: "1.0.0"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{validConfig()}}
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, SupportedProtocolID, cfg.App.ProtocolID)
	assert.Equal(t, 365, cfg.Engine.MaxGrantDays)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_CHAIN_ID", "8009")
	t.Setenv("ENGINE_ORACLE_RATE_LIMIT", "2.5")
	t.Setenv("WORKERS_SEAL_INTERVAL", "3s")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, uint64(8009), b.configs[0].App.ChainID)
	assert.Equal(t, 2.5, b.configs[0].Engine.OracleRateLimit)
	assert.Equal(t, 3*time.Second, b.configs[0].Workers.SealInterval)
}

func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "forever")

	b := newConfigBuilder()
	b.withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DRIVER", "mysql")

	b := newConfigBuilder()
	b.args = []string{"-driver", "postgres", "-d", "postgres://node@db/ledger", "-a", "localhost:9000"}
	b.withFlags().withEnv()
	require.NoError(t, b.err)

	b.configs = append(b.configs, validConfig())
	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://node@db/ledger", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-nope"}
	b.withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_duration": "2h", "chain_id": 77},
		"workers": map[string]any{"seal_interval": "500ms"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	assert.Equal(t, 2*time.Hour, b.configs[1].App.TokenDuration)
	assert.Equal(t, uint64(77), b.configs[1].App.ChainID)
	assert.Equal(t, 500*time.Millisecond, b.configs[1].Workers.SealInterval)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"no sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"bad contract", func(c *StructuredConfig) { c.App.ContractAddress = "0x12" }, ErrInvalidAppConfigs},
		{"unknown driver", func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, ErrInvalidStorageConfigs},
		{"sqlite node", func(c *StructuredConfig) { c.Storage.DB.Driver = DriverSQLite }, ErrInvalidStorageConfigs},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no engine secret", func(c *StructuredConfig) { c.Engine.Secret = "" }, ErrInvalidEngineConfigs},
		{"bad oracle", func(c *StructuredConfig) { c.Engine.OracleAddress = "oracle" }, ErrInvalidEngineConfigs},
		{"zero seal interval", func(c *StructuredConfig) { c.Workers.SealInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
