package store

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Availability is the platform signal about the secure store key.
type Availability struct {
	// Valid is false once the store key was invalidated and stored values
	// can no longer be read.
	Valid bool
	// RequiresUninstall is set when the store cannot be recovered without
	// resetting the installation.
	RequiresUninstall bool
}

// SecureStore is encrypted key/value storage for credential material.
// Missing keys are reported with [ErrKeyNotFound].
type SecureStore interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	PutBytes(ctx context.Context, key string, value []byte) error
	GetString(ctx context.Context, key string) (string, error)
	PutString(ctx context.Context, key string, value string) error
	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Availability reports whether the store key is still usable.
	Availability(ctx context.Context) Availability
}

// LegacyStore is the key store written by earlier releases. Reads of
// protected keys fail with [ErrUserNotAuthenticated] until the user passes
// an authentication prompt.
type LegacyStore interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	GetString(ctx context.Context, key string) (string, error)
	// Exists reports whether legacy data is present at all.
	Exists(ctx context.Context) bool
	// MarkAuthenticated unlocks protected keys after a successful prompt.
	MarkAuthenticated()
	// Wipe deletes all legacy data.
	Wipe(ctx context.Context) error
}

// WalletSelectionRepository persists which wallets the user enabled and
// the sync mode chosen per wallet.
type WalletSelectionRepository interface {
	EnabledWallets(ctx context.Context) ([]string, error)
	SetEnabledWallets(ctx context.Context, currencyIDs []string) error
	WalletModes(ctx context.Context) (map[string]models.SyncMode, error)
	SetWalletMode(ctx context.Context, currencyID string, mode models.SyncMode) error
}
