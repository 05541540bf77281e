// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the server database and the client
	// local cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side settings for reaching the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background sync tracker.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings of the interactive dashboard client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, role assignment and versioning.
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

	// AdminLogins lists the logins that receive the admin role on
	// registration.
	// Env: APP_ADMIN_LOGINS (comma separated)
	AdminLogins []string `env:"ADMIN_LOGINS" envSeparator:","`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the PostgreSQL connection settings of the server.
	DB DB `envPrefix:"DB_"`

	// Local holds the SQLite settings of the client cache.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the client cache settings.
type Local struct {
	// Path is the SQLite database file.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound transport settings used by the client.
type Adapter struct {
	// HTTPAddress is the base address of the admin record store server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request, including sync attempts.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sync tracker.
type Workers struct {
	// SyncInterval is the period between automatic sync attempts.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// TrackManualSync routes manual attempts through the status state machine.
	// Env: WORKERS_TRACK_MANUAL_SYNC
	TrackManualSync bool `env:"TRACK_MANUAL_SYNC"`
}

// Client holds dashboard client settings.
type Client struct {
	// LogPath is the file the client logs into.
	// Env: CLIENT_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Defaults used when no source provides a value.
const (
	DefaultSyncInterval     = 30 * time.Second
	DefaultRequestTimeout   = 15 * time.Second
	DefaultTokenDuration    = 24 * time.Hour
	DefaultTokenIssuer      = "securecode"
	DefaultLocalStoragePath = "securecode.db"
	DefaultAdapterAddress   = "http://localhost:8080"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			Local: Local{Path: DefaultLocalStoragePath},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
