package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authenticator runs an out-of-band authentication prompt. It blocks until
// the user answers or ctx is done and returns nil when the user approved.
type Authenticator interface {
	Authenticate(ctx context.Context) error
}

// MetadataProvider exposes wallet metadata kept outside the secure store.
type MetadataProvider interface {
	// WalletCreationDate returns the creation date recorded for a wallet
	// that is being restored. ok is false when none is known.
	WalletCreationDate(ctx context.Context) (created time.Time, ok bool, err error)
}

// AccountUpdater persists account bytes updated by network initialization.
type AccountUpdater interface {
	UpdateAccount(ctx context.Context, data []byte) error
}

// WalletSelectionProvider declares which wallets the user wants and how
// each of them syncs. Both streams replay the current value to every new
// subscriber and close when ctx is done.
type WalletSelectionProvider interface {
	EnabledWallets(ctx context.Context) <-chan []string
	WalletModes(ctx context.Context) <-chan map[string]models.SyncMode
	SetEnabledWallets(ctx context.Context, currencyIDs []string) error
	SetWalletMode(ctx context.Context, currencyID string, mode models.SyncMode) error
}
