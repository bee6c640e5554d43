package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		AdminLogin         string   `json:"admin_login"`
		AdminPasswordHash  string   `json:"admin_password_hash"`
		ExposeAccessTokens bool     `json:"expose_access_tokens"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Matrix struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"matrix,omitempty"`

	Workers struct {
		StartConcurrency int `json:"start_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			AdminLogin:         jsonCfg.App.AdminLogin,
			AdminPasswordHash:  jsonCfg.App.AdminPasswordHash,
			ExposeAccessTokens: jsonCfg.App.ExposeAccessTokens,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Matrix: Matrix{
			RequestTimeout: time.Duration(jsonCfg.Matrix.RequestTimeout),
		},
		Workers: Workers{
			StartConcurrency: jsonCfg.Workers.StartConcurrency,
		},
		JSONFilePath: "",
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
