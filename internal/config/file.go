package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the configuration file. The
// same layout is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		DeviceID string `json:"device_id" yaml:"device_id"`
		Mainnet  bool   `json:"mainnet" yaml:"mainnet"`
		StoreKey string `json:"store_key" yaml:"store_key"`
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
		Version  string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
		EngineDir  string `json:"engine_dir" yaml:"engine_dir"`
		LegacyPath string `json:"legacy_path" yaml:"legacy_path"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		ControlToken   string   `json:"control_token" yaml:"control_token"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		TimeServerURL  string   `json:"time_server_url" yaml:"time_server_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Engine struct {
		Networks           []string `json:"networks" yaml:"networks"`
		CandidateSelection string   `json:"candidate_selection" yaml:"candidate_selection"`
	} `json:"engine,omitempty" yaml:"engine,omitempty"`

	Workers struct {
		TimeSyncInterval   Duration `json:"time_sync_interval" yaml:"time_sync_interval"`
		CloseDelay         Duration `json:"close_delay" yaml:"close_delay"`
		FastThrottle       Duration `json:"fast_throttle" yaml:"fast_throttle"`
		CoalescingThrottle Duration `json:"coalescing_throttle" yaml:"coalescing_throttle"`
		LockoutTick        Duration `json:"lockout_tick" yaml:"lockout_tick"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Wallets struct {
		DefaultEnabled []string `json:"default_enabled" yaml:"default_enabled"`
	} `json:"wallets,omitempty" yaml:"wallets,omitempty"`
}

// parseFile decodes the configuration file at path. Files ending in .yaml
// or .yml are read as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.structured(), nil
}

func (f StructuredFileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DeviceID: f.App.DeviceID,
			Mainnet:  f.App.Mainnet,
			StoreKey: f.App.StoreKey,
			LogLevel: f.App.LogLevel,
			LogFile:  f.App.LogFile,
			Version:  f.App.Version,
		},
		Storage: Storage{
			DB:         DB{DSN: f.Storage.DB.DSN},
			EngineDir:  f.Storage.EngineDir,
			LegacyPath: f.Storage.LegacyPath,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			ControlToken:   f.Server.ControlToken,
		},
		Adapter: Adapter{
			TimeServerURL:  f.Adapter.TimeServerURL,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Engine: Engine{
			Networks:           f.Engine.Networks,
			CandidateSelection: f.Engine.CandidateSelection,
		},
		Workers: Workers{
			TimeSyncInterval:   time.Duration(f.Workers.TimeSyncInterval),
			CloseDelay:         time.Duration(f.Workers.CloseDelay),
			FastThrottle:       time.Duration(f.Workers.FastThrottle),
			CoalescingThrottle: time.Duration(f.Workers.CoalescingThrottle),
			LockoutTick:        time.Duration(f.Workers.LockoutTick),
		},
		Wallets: Wallets{
			DefaultEnabled: f.Wallets.DefaultEnabled,
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
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

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
