// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the ledger node. It is
// populated by merging command-line flags, environment variables and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds ledger identity and authentication settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Engine holds the encryption engine and decryption oracle settings.
	Engine Engine `envPrefix:"ENGINE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds ledger identity and token settings.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ChainID identifies the ledger network. Grants are signed for it.
	// Env: APP_CHAIN_ID
	ChainID uint64 `env:"CHAIN_ID"`

	// ContractAddress is the address of the health ledger contract.
	// Env: APP_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// ProtocolID is the confidential-protocol id advertised to clients.
	// Env: APP_PROTOCOL_ID
	ProtocolID uint64 `env:"PROTOCOL_ID"`

	// ChallengeWindow bounds the age of a signed login challenge.
	// Env: APP_CHALLENGE_WINDOW
	ChallengeWindow time.Duration `env:"CHALLENGE_WINDOW"`

	// Version is exposed via /api/v1/info.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the ledger and relayer HTTP API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string: a postgres URL or a sqlite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is "postgres" or "sqlite". Empty means postgres. A node refuses
	// sqlite; it backs in-process ledgers only.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Engine holds the coprocessor and oracle settings.
type Engine struct {
	// Secret seeds the key ciphertexts are sealed with at rest.
	// Env: ENGINE_SECRET
	Secret string `env:"SECRET"`

	// InputProofKey authenticates input proofs issued by the relayer.
	// Env: ENGINE_INPUT_PROOF_KEY
	InputProofKey string `env:"INPUT_PROOF_KEY"`

	// OracleAddress is the verifying contract of the decryption domain.
	// Env: ENGINE_ORACLE_ADDRESS
	OracleAddress string `env:"ORACLE_ADDRESS"`

	// OracleRateLimit is the sustained oracle requests per second.
	// Env: ENGINE_ORACLE_RATE_LIMIT
	OracleRateLimit float64 `env:"ORACLE_RATE_LIMIT"`

	// OracleBurst is the oracle limiter bucket size.
	// Env: ENGINE_ORACLE_BURST
	OracleBurst int `env:"ORACLE_BURST"`

	// MaxGrantDays caps the duration of a decryption grant.
	// Env: ENGINE_MAX_GRANT_DAYS
	MaxGrantDays int `env:"MAX_GRANT_DAYS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SealInterval is how often pending transactions are sealed into a block.
	// Env: WORKERS_SEAL_INTERVAL
	SealInterval time.Duration `env:"SEAL_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the ledger configuration.
// Sources are applied in this priority order (first non-zero field wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
