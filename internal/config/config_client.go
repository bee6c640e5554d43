package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the management CLI, assembled from
// [StructuredConfig].
type ClientConfig struct {
	// HTTPAddress is the management API address used by the CLI.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound CLI requests.
	RequestTimeout time.Duration
	// Token is the bearer token presented to the management API.
	Token string
}

// GetClientConfig builds and validates a CLI-specific config view from the
// merged structured configuration. Server-only settings are not validated.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
	}

	return clientCfg, clientCfg.validate()
}
