package config

import (
	"fmt"
	"time"
)

// ClientApp holds daemon identity and logging settings.
type ClientApp struct {
	DeviceID string
	Mainnet  bool
	// StoreKey is the secure store secret.
	StoreKey string
	LogLevel string
	LogFile  string
	Version  string
}

// ClientAdapter holds settings of the trusted time client.
type ClientAdapter struct {
	// TimeServerURL is the backend base URL. Empty disables trusted time.
	TimeServerURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// EngineDir is the root of on-disk chain engine state.
	EngineDir string
	// LegacyPath is the pre-migration key file.
	LegacyPath string
}

// ClientServer holds control API settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	ControlToken   string
}

// ClientEngine holds chain engine settings.
type ClientEngine struct {
	Networks           []string
	CandidateSelection string
}

// ClientWorkers contains background job and throttle settings.
type ClientWorkers struct {
	TimeSyncInterval   time.Duration
	CloseDelay         time.Duration
	FastThrottle       time.Duration
	CoalescingThrottle time.Duration
	LockoutTick        time.Duration
}

// ClientWallets contains wallet selection defaults.
type ClientWallets struct {
	DefaultEnabled []string
}

// ClientConfig is the daemon configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
	Engine  ClientEngine
	Workers ClientWorkers
	Wallets ClientWallets
}

// GetClientConfig builds and validates the daemon config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg into a [ClientConfig] without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceID: cfg.App.DeviceID,
			Mainnet:  cfg.App.Mainnet,
			StoreKey: cfg.App.StoreKey,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
			Version:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			TimeServerURL:  cfg.Adapter.TimeServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:         ClientDB{DSN: cfg.Storage.DB.DSN},
			EngineDir:  cfg.Storage.EngineDir,
			LegacyPath: cfg.Storage.LegacyPath,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			ControlToken:   cfg.Server.ControlToken,
		},
		Engine: ClientEngine{
			Networks:           cfg.Engine.Networks,
			CandidateSelection: cfg.Engine.CandidateSelection,
		},
		Workers: ClientWorkers{
			TimeSyncInterval:   cfg.Workers.TimeSyncInterval,
			CloseDelay:         cfg.Workers.CloseDelay,
			FastThrottle:       cfg.Workers.FastThrottle,
			CoalescingThrottle: cfg.Workers.CoalescingThrottle,
			LockoutTick:        cfg.Workers.LockoutTick,
		},
		Wallets: ClientWallets{
			DefaultEnabled: cfg.Wallets.DefaultEnabled,
		},
	}
}
