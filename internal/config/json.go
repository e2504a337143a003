package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the node configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		ChainID         uint64   `json:"chain_id"`
		ContractAddress string   `json:"contract_address"`
		ProtocolID      uint64   `json:"protocol_id"`
		ChallengeWindow Duration `json:"challenge_window"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Engine struct {
		Secret          string  `json:"secret"`
		InputProofKey   string  `json:"input_proof_key"`
		OracleAddress   string  `json:"oracle_address"`
		OracleRateLimit float64 `json:"oracle_rate_limit"`
		OracleBurst     int     `json:"oracle_burst"`
		MaxGrantDays    int     `json:"max_grant_days"`
	} `json:"engine,omitempty"`

	Workers struct {
		SealInterval Duration `json:"seal_interval"`
	} `json:"workers,omitempty"`
}

func decodeJSONFile(path string, v any) error {
	jsonFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	if err := json.NewDecoder(jsonFile).Decode(v); err != nil {
		return fmt.Errorf("error decoding json configs: %w", err)
	}
	return nil
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	var jsonCfg StructuredJSONConfig
	if err := decodeJSONFile(jsonFilePath, &jsonCfg); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			ChainID:         jsonCfg.App.ChainID,
			ContractAddress: jsonCfg.App.ContractAddress,
			ProtocolID:      jsonCfg.App.ProtocolID,
			ChallengeWindow: time.Duration(jsonCfg.App.ChallengeWindow),
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Engine: Engine{
			Secret:          jsonCfg.Engine.Secret,
			InputProofKey:   jsonCfg.Engine.InputProofKey,
			OracleAddress:   jsonCfg.Engine.OracleAddress,
			OracleRateLimit: jsonCfg.Engine.OracleRateLimit,
			OracleBurst:     jsonCfg.Engine.OracleBurst,
			MaxGrantDays:    jsonCfg.Engine.MaxGrantDays,
		},
		Workers: Workers{SealInterval: time.Duration(jsonCfg.Workers.SealInterval)},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
