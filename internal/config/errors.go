package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a time server without request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or engine directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing store key or unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid control API settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEngineConfigs indicates an empty network list.
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero lockout tick).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
