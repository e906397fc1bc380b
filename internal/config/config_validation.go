// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Group-level requirements are checked by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.StoreKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.EngineDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.TimeServerURL != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.LockoutTick <= 0 || cfg.Workers.CloseDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Adapter.TimeServerURL != "" && cfg.Workers.TimeSyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if len(cfg.Engine.Networks) == 0 {
		return ErrInvalidEngineConfigs
	}

	switch cfg.Engine.CandidateSelection {
	case "", "lowest_balance", "highest_balance":
	default:
		return ErrInvalidEngineConfigs
	}

	return nil
}
