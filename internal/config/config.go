// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-bot-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as admin credentials,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the client record database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the management CLI to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Matrix holds settings for outbound homeserver requests.
	Matrix Matrix `envPrefix:"MATRIX_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control management
// API authentication and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminLogin is the login accepted by the management API.
	// Env: APP_ADMIN_LOGIN
	AdminLogin string `env:"ADMIN_LOGIN"`

	// AdminPasswordHash is the bcrypt hash of the admin password.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// ExposeAccessTokens controls whether client views include the Matrix
	// access token. When false the field is always omitted.
	// Env: APP_EXPOSE_ACCESS_TOKENS
	ExposeAccessTokens bool `env:"EXPOSE_ACCESS_TOKENS"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint,
	// in "host:port" format (e.g. "0.0.0.0:9090"). Optional.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://..." or "postgresql://..." opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings the management CLI uses to reach the server.
type Adapter struct {
	// HTTPAddress is the base address of the management API
	// (e.g. "localhost:8080" or "https://bots.example.org").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every CLI request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token presented to the management API.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Matrix holds settings for requests sent to Matrix homeservers.
type Matrix struct {
	// RequestTimeout bounds whoami, profile and ping requests.
	// Env: MATRIX_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// StartConcurrency limits how many enabled clients are started in
	// parallel on boot. Zero means unlimited.
	// Env: WORKERS_START_CONCURRENCY
	StartConcurrency int `env:"START_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
