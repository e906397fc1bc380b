package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// LegacyPhraseKey is the only legacy entry guarded by an authentication
// prompt.
const LegacyPhraseKey = "phrase"

// ClientStorages groups every storage backend of the daemon into a single
// value that can be passed to the service layer.
type ClientStorages struct {
	// DB is the local SQLite database shared by the repositories below.
	DB *DB
	// SecureStore holds sealed credential material.
	SecureStore SecureStore
	// LegacyStore is the key file of earlier releases.
	LegacyStore LegacyStore
	// WalletSelection persists enabled wallets and sync modes.
	WalletSelection WalletSelectionRepository
}

// NewClientStorages initialises the storage layer:
//  1. Opens the SQLite database at cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the secure store sealed with a key derived from secret.
//  4. Loads the legacy key file, if any.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, secret []byte, keychain crypto.KeyChainService, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	secureStore, err := NewSQLiteSecureStore(ctx, db, keychain, secret, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("secure store init failed: %w", err)
	}

	legacyStore, err := NewLegacyFileStore(cfg.LegacyPath, secret, keychain, log, LegacyPhraseKey)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("legacy store init failed: %w", err)
	}

	return &ClientStorages{
		DB:              db,
		SecureStore:     secureStore,
		LegacyStore:     legacyStore,
		WalletSelection: NewWalletSelectionRepository(db, log),
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
