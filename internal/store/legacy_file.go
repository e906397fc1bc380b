package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// legacyAuthValidity bounds how long a passed authentication prompt unlocks
// protected keys.
const legacyAuthValidity = 2 * time.Minute

var legacyKeySalt = []byte("go-wallet-keeper/legacy-store/v1")

// LegacyFileStore reads the JSON key file written by earlier releases.
// Values are sealed with AES-256-GCM.
type LegacyFileStore struct {
	path      string
	keychain  crypto.KeyChainService
	key       []byte
	protected map[string]struct{}
	logger    *logger.Logger

	mu        sync.RWMutex
	values    map[string][]byte
	authUntil time.Time
	now       func() time.Time
}

type legacyPersistedState struct {
	Version int               `json:"version"`
	Values  map[string][]byte `json:"values"`
}

// NewLegacyFileStore loads path if it exists. Reads of protectedKeys require
// [LegacyFileStore.MarkAuthenticated].
func NewLegacyFileStore(path string, secret []byte, keychain crypto.KeyChainService, log *logger.Logger, protectedKeys ...string) (*LegacyFileStore, error) {
	key, err := keychain.DeriveStoreKey(secret, legacyKeySalt)
	if err != nil {
		return nil, err
	}

	s := &LegacyFileStore{
		path:      path,
		keychain:  keychain,
		key:       key,
		protected: make(map[string]struct{}, len(protectedKeys)),
		logger:    log,
		values:    make(map[string][]byte),
		now:       time.Now,
	}
	for _, k := range protectedKeys {
		s.protected[k] = struct{}{}
	}

	if err = s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LegacyFileStore) load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read legacy store file: %w", err)
	}

	var st legacyPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode legacy store file: %w", err)
	}
	if st.Values != nil {
		s.values = st.Values
	}
	return nil
}

func (s *LegacyFileStore) persist() error {
	if s.path == "" {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create legacy store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(legacyPersistedState{Version: 1, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode legacy store: %w", err)
	}
	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write legacy store file: %w", err)
	}
	return nil
}

// Put seals and stores value. Only tooling and tests write legacy data.
func (s *LegacyFileStore) Put(key string, value []byte) error {
	sealed, err := s.keychain.SealLegacy(s.key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = sealed
	return s.persist()
}

func (s *LegacyFileStore) GetBytes(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.protected[key]; ok && !s.now().Before(s.authUntil) {
		return nil, ErrUserNotAuthenticated
	}

	sealed, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	plain, err := s.keychain.OpenLegacy(s.key, sealed)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "LegacyFileStore.GetBytes").
			Str("key", key).
			Msg("failed to open legacy value")
		return nil, errors.Join(ErrStoreInvalidated, err)
	}
	return plain, nil
}

func (s *LegacyFileStore) GetString(ctx context.Context, key string) (string, error) {
	b, err := s.GetBytes(ctx, key)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *LegacyFileStore) Exists(context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values) > 0
}

func (s *LegacyFileStore) MarkAuthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authUntil = s.now().Add(legacyAuthValidity)
}

func (s *LegacyFileStore) Wipe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string][]byte)
	s.authUntil = time.Time{}
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.FromContext(ctx).Err(err).Str("func", "LegacyFileStore.Wipe").Msg("failed to remove legacy store file")
		return fmt.Errorf("remove legacy store file: %w", err)
	}
	return nil
}
