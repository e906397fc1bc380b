package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain/hd"
	"github.com/MKhiriev/go-wallet-keeper/internal/clock"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var testStart = time.Date(2026, time.March, 14, 9, 26, 53, 589_000_000, time.UTC)

// vaultFixture собирает хранилище с реальной криптографией и ручными часами.
type vaultFixture struct {
	vault  *CredentialVault
	secure *store.MemorySecureStore
	legacy *store.LegacyFileStore
	clock  *clock.Manual
}

type fixtureOption func(*VaultOptions)

func withAuthenticator(a Authenticator) fixtureOption {
	return func(o *VaultOptions) { o.Authenticator = a }
}

func withMetadata(m MetadataProvider) fixtureOption {
	return func(o *VaultOptions) { o.Metadata = m }
}

func newVaultFixture(t *testing.T, opts ...fixtureOption) *vaultFixture {
	t.Helper()

	keychain := crypto.NewFastKeyChainService()
	legacy, err := store.NewLegacyFileStore(
		filepath.Join(t.TempDir(), "legacy.json"),
		[]byte("legacy-secret"),
		keychain,
		logger.Nop(),
		store.LegacyPhraseKey,
	)
	require.NoError(t, err)

	f := &vaultFixture{
		secure: store.NewMemorySecureStore(),
		legacy: legacy,
		clock:  clock.NewManual(testStart),
	}

	vo := VaultOptions{Mainnet: true, Clock: f.clock}
	for _, opt := range opts {
		opt(&vo)
	}

	f.vault = NewCredentialVault(f.secure, legacy, hd.NewAccountFactory(), hd.NewKeyFactory(), keychain, vo, logger.Nop())
	return f
}

// setup creates an account from testPhrase.
func (f *vaultFixture) setup(t *testing.T) {
	t.Helper()
	_, err := f.vault.SetupWithPhrase(context.Background(), []byte(testPhrase))
	require.NoError(t, err)
}

// approvingAuthenticator unlocks the legacy store the way AuthGate does
// after the user approved the prompt.
type approvingAuthenticator struct {
	legacy store.LegacyStore
	calls  int
}

func (a *approvingAuthenticator) Authenticate(context.Context) error {
	a.calls++
	a.legacy.MarkAuthenticated()
	return nil
}
