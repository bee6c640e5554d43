package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN (postgres:// URL or SQLite file path)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-admin-login management API admin login
//	-admin-password-hash bcrypt hash of the admin password
//	-expose-access-tokens include Matrix access tokens in client views
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-matrix-timeout homeserver request timeout (e.g., "10s")
//	-start-concurrency number of clients started in parallel on boot
//	-server management API address used by the CLI
//	-token management API bearer token used by the CLI
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var adminLogin string
	var adminPasswordHash string
	var exposeAccessTokens bool
	var requestTimeout time.Duration
	var matrixTimeout time.Duration
	var startConcurrency int
	var adapterAddress string
	var adapterToken string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&adminLogin, "admin-login", "", "Admin login")
	flag.StringVar(&adminPasswordHash, "admin-password-hash", "", "Admin password bcrypt hash")
	flag.BoolVar(&exposeAccessTokens, "expose-access-tokens", false, "Include access tokens in client views")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&matrixTimeout, "matrix-timeout", 0, "Homeserver request timeout (e.g., 10s)")
	flag.IntVar(&startConcurrency, "start-concurrency", 0, "Clients started in parallel on boot")
	flag.StringVar(&adapterAddress, "server", "", "Management API address (CLI)")
	flag.StringVar(&adapterToken, "token", "", "Management API bearer token (CLI)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			AdminLogin:         adminLogin,
			AdminPasswordHash:  adminPasswordHash,
			ExposeAccessTokens: exposeAccessTokens,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			Token:          adapterToken,
		},
		Matrix: Matrix{
			RequestTimeout: matrixTimeout,
		},
		Workers: Workers{
			StartConcurrency: startConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
