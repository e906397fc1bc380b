package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

func openTestDB(t *testing.T, path string) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteSecureStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "wallet.db"))

	s, err := NewSQLiteSecureStore(ctx, db, crypto.NewFastKeyChainService(), []byte("secret"), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, Availability{Valid: true}, s.Availability(ctx))

	require.NoError(t, s.PutBytes(ctx, "phrase", []byte("abandon about")))
	require.NoError(t, s.PutString(ctx, "token", "t-1"))
	require.NoError(t, s.PutString(ctx, "token", "t-2"))

	b, err := s.GetBytes(ctx, "phrase")
	require.NoError(t, err)
	assert.Equal(t, []byte("abandon about"), b)

	tok, err := s.GetString(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "t-2", tok)

	require.NoError(t, s.Delete(ctx, "phrase", "missing"))
	_, err = s.GetBytes(ctx, "phrase")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// TestSQLiteSecureStore_ValuesAreSealed checks nothing is stored in clear.
func TestSQLiteSecureStore_ValuesAreSealed(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "wallet.db"))

	s, err := NewSQLiteSecureStore(ctx, db, crypto.NewFastKeyChainService(), []byte("secret"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.PutString(ctx, "pinCode", "plain-value"))

	var raw []byte
	require.NoError(t, db.QueryRowContext(ctx, getSecureValue, "pinCode").Scan(&raw))
	assert.NotContains(t, string(raw), "plain-value")
}

// TestSQLiteSecureStore_ChangedSecretInvalidates reopens the same database
// with another secret.
func TestSQLiteSecureStore_ChangedSecretInvalidates(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.db")
	keychain := crypto.NewFastKeyChainService()

	db := openTestDB(t, path)
	s, err := NewSQLiteSecureStore(ctx, db, keychain, []byte("first"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.PutString(ctx, "account", "acc"))

	reopened, err := NewSQLiteSecureStore(ctx, db, keychain, []byte("second"), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, Availability{Valid: false}, reopened.Availability(ctx))
	_, err = reopened.GetString(ctx, "account")
	assert.ErrorIs(t, err, ErrStoreInvalidated)
	assert.ErrorIs(t, reopened.PutString(ctx, "account", "x"), ErrStoreInvalidated)

	// wiping still works
	require.NoError(t, reopened.Delete(ctx, "account"))

	same, err := NewSQLiteSecureStore(ctx, db, keychain, []byte("first"), logger.Nop())
	require.NoError(t, err)
	_, err = same.GetString(ctx, "account")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteSecureStore_UnreachableDBRequiresUninstall(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "wallet.db"))

	s, err := NewSQLiteSecureStore(ctx, db, crypto.NewFastKeyChainService(), []byte("secret"), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Equal(t, Availability{Valid: false, RequiresUninstall: true}, s.Availability(ctx))
}

func TestNewSQLiteSecureStore_MetaQueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT value FROM store_meta").
		WithArgs(metaSalt).
		WillReturnError(errors.New("database is locked"))

	db := &DB{DB: sqlDB, logger: logger.Nop()}
	_, err = NewSQLiteSecureStore(context.Background(), db, crypto.NewFastKeyChainService(), []byte("secret"), logger.Nop())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestMemorySecureStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySecureStore()

	_, err := s.GetString(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	value := []byte{1, 2, 3}
	require.NoError(t, s.PutBytes(ctx, "k", value))
	value[0] = 9

	got, err := s.GetBytes(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	require.NoError(t, s.PutString(ctx, "a", "x"))
	assert.Equal(t, []string{"a", "k"}, s.Keys())

	require.NoError(t, s.Delete(ctx, "a", "k"))
	assert.Empty(t, s.Keys())

	s.SetAvailability(Availability{Valid: false, RequiresUninstall: true})
	assert.True(t, s.Availability(ctx).RequiresUninstall)
}
