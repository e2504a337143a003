package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the prismctl command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the ledger node.
	// Env: PRISM_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS" json:"server_address"`
	// KeyFile is the password-sealed signing key of the account.
	// Env: PRISM_KEY_FILE
	KeyFile string `env:"KEY_FILE" json:"key_file"`
	// LogFile receives client logs. Empty means next to the executable.
	// Env: PRISM_LOG_FILE
	LogFile string `env:"LOG_FILE" json:"log_file"`
	// ExpectedProtocolID must match the ledger's advertised protocol id.
	// Env: PRISM_EXPECTED_PROTOCOL_ID
	ExpectedProtocolID uint64 `env:"EXPECTED_PROTOCOL_ID" json:"expected_protocol_id"`
	// RequestTimeout bounds every outbound request.
	// Env: PRISM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"-"`
	// RetryCount is how many times a request failing with 5xx is retried.
	// Env: PRISM_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT" json:"retry_count"`
	// FinalityTimeout bounds the wait for a submitted call to be sealed.
	// Env: PRISM_FINALITY_TIMEOUT
	FinalityTimeout time.Duration `env:"FINALITY_TIMEOUT" json:"-"`

	// ConfigFile is an optional JSON file merged below env and flags.
	// Env: PRISM_CONFIG
	ConfigFile string `env:"CONFIG" json:"-"`
}

type clientJSONConfig struct {
	ClientConfig
	RequestTimeout  Duration `json:"request_timeout"`
	FinalityTimeout Duration `json:"finality_timeout"`
}

// GetClientConfig merges the command-line values in flags over environment
// variables (PRISM_ prefix), then the optional JSON file, then defaults.
func GetClientConfig(flags ClientConfig) (*ClientConfig, error) {
	var envCfg ClientConfig
	if err := parseEnvPrefixed(&envCfg, "PRISM_"); err != nil {
		return nil, err
	}

	sources := []ClientConfig{flags, envCfg}

	jsonPath := flags.ConfigFile
	if jsonPath == "" {
		jsonPath = envCfg.ConfigFile
	}
	if jsonPath != "" {
		jsonCfg, err := parseClientJSON(jsonPath)
		if err != nil {
			return nil, err
		}
		sources = append(sources, jsonCfg)
	}

	sources = append(sources, ClientConfig{
		ServerAddress:      "http://localhost:8080",
		KeyFile:            "prismctl.key",
		ExpectedProtocolID: SupportedProtocolID,
		RequestTimeout:     15 * time.Second,
		RetryCount:         3,
		FinalityTimeout:    30 * time.Second,
	})

	cfg := new(ClientConfig)
	for _, src := range sources {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func parseClientJSON(path string) (ClientConfig, error) {
	var raw clientJSONConfig
	if err := decodeJSONFile(path, &raw); err != nil {
		return ClientConfig{}, err
	}

	cfg := raw.ClientConfig
	cfg.RequestTimeout = time.Duration(raw.RequestTimeout)
	cfg.FinalityTimeout = time.Duration(raw.FinalityTimeout)
	return cfg, nil
}

var errNoServerAddress = errors.New("server address is empty")
