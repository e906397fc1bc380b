// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// sqliteSecureStore keeps sealed values in the local SQLite database. The
// sealing key is derived from the configured store secret and a random
// per-database salt; a sealed canary detects a changed secret.
type sqliteSecureStore struct {
	db       *DB
	keychain crypto.KeyChainService
	key      []byte
	logger   *logger.Logger

	mu           sync.RWMutex
	availability Availability
}

// NewSQLiteSecureStore opens the secure store on db. A secret that does not
// match the one the database was created with does not fail construction;
// it makes the store report itself as invalid.
func NewSQLiteSecureStore(ctx context.Context, db *DB, keychain crypto.KeyChainService, secret []byte, log *logger.Logger) (SecureStore, error) {
	s := &sqliteSecureStore{
		db:       db,
		keychain: keychain,
		logger:   log,
	}

	salt, err := s.loadOrCreateMeta(ctx, metaSalt, func() ([]byte, error) {
		salt := make([]byte, 16)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, err
		}
		return salt, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load store salt: %w", err)
	}

	if s.key, err = keychain.DeriveStoreKey(secret, salt); err != nil {
		return nil, err
	}

	canary, err := s.loadOrCreateMeta(ctx, metaCanary, func() ([]byte, error) {
		return keychain.Seal(s.key, []byte(canaryText))
	})
	if err != nil {
		return nil, fmt.Errorf("load store canary: %w", err)
	}

	s.availability = Availability{Valid: true}
	if plain, err := keychain.Open(s.key, canary); err != nil || string(plain) != canaryText {
		log.Warn().Str("func", "NewSQLiteSecureStore").Msg("secure store key does not match stored canary")
		s.availability = Availability{Valid: false}
	}

	return s, nil
}

func (s *sqliteSecureStore) loadOrCreateMeta(ctx context.Context, name string, create func() ([]byte, error)) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, getStoreMeta, name).Scan(&value)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if value, err = create(); err != nil {
		return nil, err
	}
	if _, err = s.db.ExecContext(ctx, putStoreMeta, name, value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	// another writer may have won the race
	if err = s.db.QueryRowContext(ctx, getStoreMeta, name).Scan(&value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return value, nil
}

func (s *sqliteSecureStore) valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availability.Valid
}

// GetBytes implements [SecureStore].
func (s *sqliteSecureStore) GetBytes(ctx context.Context, key string) ([]byte, error) {
	if !s.valid() {
		return nil, ErrStoreInvalidated
	}

	var sealed []byte
	err := s.db.QueryRowContext(ctx, getSecureValue, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteSecureStore.GetBytes").
			Str("key", key).
			Msg("failed to query secure value")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	plain, err := s.keychain.Open(s.key, sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreInvalidated, err)
	}
	return plain, nil
}

// PutBytes implements [SecureStore].
func (s *sqliteSecureStore) PutBytes(ctx context.Context, key string, value []byte) error {
	if !s.valid() {
		return ErrStoreInvalidated
	}

	sealed, err := s.keychain.Seal(s.key, value)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, putSecureValue, key, sealed, time.Now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteSecureStore.PutBytes").
			Str("key", key).
			Msg("failed to upsert secure value")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

// GetString implements [SecureStore].
func (s *sqliteSecureStore) GetString(ctx context.Context, key string) (string, error) {
	b, err := s.GetBytes(ctx, key)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PutString implements [SecureStore].
func (s *sqliteSecureStore) PutString(ctx context.Context, key string, value string) error {
	return s.PutBytes(ctx, key, []byte(value))
}

// Delete implements [SecureStore]. Deletion works on an invalidated store
// so the user can always wipe.
func (s *sqliteSecureStore) Delete(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, deleteSecureValue, key); err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}
	return nil
}

// Availability implements [SecureStore]. An unreachable database cannot be
// repaired by the user and is reported as requiring reinstall.
func (s *sqliteSecureStore) Availability(ctx context.Context) Availability {
	if err := s.db.PingContext(ctx); err != nil {
		return Availability{Valid: false, RequiresUninstall: true}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.availability
}
