package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Fallback values applied after all user-provided sources. mergo only fills
// zero fields, so any explicit setting wins.
const (
	defaultTokenIssuer          = "go-bot-keeper"
	defaultTokenDuration        = 24 * time.Hour
	defaultRequestTimeout       = 30 * time.Second
	defaultMatrixRequestTimeout = 15 * time.Second
	defaultStartConcurrency     = 4
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults prepends the fallback config so that every other source
// overrides it.
func (b *configBuilder) withDefaults() *configBuilder {
	defaults := &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server:  Server{RequestTimeout: defaultRequestTimeout},
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Matrix:  Matrix{RequestTimeout: defaultMatrixRequestTimeout},
		Workers: Workers{StartConcurrency: defaultStartConcurrency},
	}

	b.configs = append([]*StructuredConfig{defaults}, b.configs...)
	return b
}
