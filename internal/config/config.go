// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable the daemon reads.
const EnvPrefix = "WALLET_"

// StructuredConfig is the top-level configuration container for the
// wallet daemon. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity, network selection and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local database, engine directory and legacy key
	// store locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the control API listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the outbound trusted time client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Engine selects the networks exposed by the chain engine.
	Engine Engine `envPrefix:"ENGINE_"`

	// Workers holds intervals of background jobs and stream throttles.
	Workers Workers `envPrefix:"WORKERS_"`

	// Wallets holds wallet selection defaults.
	Wallets Wallets `envPrefix:"WALLETS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the WALLET_CONFIG environment variable or the -c / -config
	// flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// DeviceID overrides the persisted device identifier. Leave empty to
	// let the vault generate one.
	// Env: WALLET_APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// Mainnet switches the engine and key derivation to mainnet.
	// Env: WALLET_APP_MAINNET
	Mainnet bool `env:"MAINNET"`

	// StoreKey is the secret the secure store sealing key is derived from.
	// Changing it invalidates every stored credential.
	// Env: WALLET_APP_STORE_KEY
	StoreKey string `env:"STORE_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: WALLET_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile redirects logs to a file when set.
	// Env: WALLET_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is exposed via GET /api/version.
	// Env: WALLET_APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// EngineDir is the root directory of on-disk chain engine state.
	// Env: WALLET_STORAGE_ENGINE_DIR
	EngineDir string `env:"ENGINE_DIR"`

	// LegacyPath is the key file written by earlier releases.
	// Env: WALLET_STORAGE_LEGACY_PATH
	LegacyPath string `env:"LEGACY_PATH"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: WALLET_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the control API.
type Server struct {
	// HTTPAddress is the TCP address the control API listens on, in
	// "host:port" format.
	// Env: WALLET_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single non-streaming
	// request.
	// Env: WALLET_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ControlToken, when set, must be presented as a bearer token on every
	// /api request.
	// Env: WALLET_SERVER_CONTROL_TOKEN
	ControlToken string `env:"CONTROL_TOKEN"`
}

// Adapter holds configuration for the trusted time backend.
type Adapter struct {
	// TimeServerURL is the base URL of the backend serving /api/time.
	// The trusted time refresher is disabled when empty.
	// Env: WALLET_ADAPTER_TIME_SERVER_URL
	TimeServerURL string `env:"TIME_SERVER_URL"`

	// RequestTimeout bounds each outbound request.
	// Env: WALLET_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Engine configures the simulated chain engine.
type Engine struct {
	// Networks lists native currency codes of the networks to expose
	// (e.g. "btc,eth,hbar").
	// Env: WALLET_ENGINE_NETWORKS
	Networks []string `env:"NETWORKS" envSeparator:","`

	// CandidateSelection picks among several on-chain accounts for the
	// same key: "lowest_balance" or "highest_balance".
	// Env: WALLET_ENGINE_CANDIDATE_SELECTION
	CandidateSelection string `env:"CANDIDATE_SELECTION"`
}

// Workers holds configuration for background jobs and stream throttles.
type Workers struct {
	// TimeSyncInterval is how often the trusted clock is refreshed.
	TimeSyncInterval time.Duration `env:"TIME_SYNC_INTERVAL"`

	// CloseDelay is how long the sync session stays open after the user
	// state leaves Enabled.
	CloseDelay time.Duration `env:"CLOSE_DELAY"`

	// FastThrottle is the default window of per-wallet views.
	FastThrottle time.Duration `env:"FAST_THROTTLE"`

	// CoalescingThrottle is the window of aggregate views.
	CoalescingThrottle time.Duration `env:"COALESCING_THROTTLE"`

	// LockoutTick is the period of the lockout countdown.
	LockoutTick time.Duration `env:"LOCKOUT_TICK"`
}

// Wallets holds wallet selection defaults.
type Wallets struct {
	// DefaultEnabled lists currency ids enabled on first start. Empty
	// enables the native currency of every network.
	// Env: WALLET_WALLETS_DEFAULT_ENABLED
	DefaultEnabled []string `env:"DEFAULT_ENABLED" envSeparator:","`
}

// Default returns the configuration used for every field no source sets.
func Default() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			Version:  "dev",
		},
		Storage: Storage{
			DB:         DB{DSN: "data/wallet.db"},
			EngineDir:  "data/engine",
			LegacyPath: "data/legacy.json",
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:8421",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Engine: Engine{
			Networks:           []string{"btc", "eth", "hbar"},
			CandidateSelection: "lowest_balance",
		},
		Workers: Workers{
			TimeSyncInterval:   10 * time.Minute,
			CloseDelay:         30 * time.Second,
			FastThrottle:       500 * time.Millisecond,
			CoalescingThrottle: 800 * time.Millisecond,
			LockoutTick:        time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
