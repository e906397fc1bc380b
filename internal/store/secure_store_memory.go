package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemorySecureStore is a process-local [SecureStore]. It backs ephemeral
// daemons and tests.
type MemorySecureStore struct {
	mu           sync.RWMutex
	values       map[string][]byte
	availability Availability
}

// NewMemorySecureStore returns an empty, valid store.
func NewMemorySecureStore() *MemorySecureStore {
	return &MemorySecureStore{
		values:       make(map[string][]byte),
		availability: Availability{Valid: true},
	}
}

// SetAvailability overrides the platform signal.
func (m *MemorySecureStore) SetAvailability(a Availability) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.availability = a
}

// Keys returns the stored keys in sorted order.
func (m *MemorySecureStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.values))
}

func (m *MemorySecureStore) GetBytes(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (m *MemorySecureStore) PutBytes(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = slices.Clone(value)
	return nil
}

func (m *MemorySecureStore) GetString(ctx context.Context, key string) (string, error) {
	b, err := m.GetBytes(ctx, key)
	return string(b), err
}

func (m *MemorySecureStore) PutString(ctx context.Context, key string, value string) error {
	return m.PutBytes(ctx, key, []byte(value))
}

func (m *MemorySecureStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *MemorySecureStore) Availability(context.Context) Availability {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.availability
}
