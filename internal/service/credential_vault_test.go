// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain/hd"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

// ── Setup ────────────────────────────────────────────────────────────────────

func TestCredentialVault_SetupWithGeneratedPhrase(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)

	cred, err := f.vault.SetupWithGeneratedPhrase(ctx)
	require.NoError(t, err)

	assert.True(t, crypto.NewFastKeyChainService().ValidatePhrase(cred.Phrase))
	assert.NotEmpty(t, cred.AuthKey)
	assert.NotEmpty(t, cred.Account)
	assert.Equal(t, testStart.Truncate(time.Second).Unix(), cred.CreationTime.Unix())

	phrase, err := f.vault.GetPhrase(ctx)
	require.NoError(t, err)
	assert.Equal(t, cred.Phrase, phrase)

	account, err := f.vault.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, cred.Account, account.Serialize())

	creation, err := f.vault.CreationTime(ctx)
	require.NoError(t, err)
	assert.True(t, creation.Equal(cred.CreationTime))
}

func TestCredentialVault_Setup_PhraseAlreadyExists(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.setup(t)

	_, err := f.vault.SetupWithGeneratedPhrase(ctx)
	assert.ErrorIs(t, err, ErrPhraseAlreadyExists)

	// существующий аккаунт не должен пострадать
	phrase, err := f.vault.GetPhrase(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPhrase, string(phrase))
}

func TestCredentialVault_SetupWithPhrase_Invalid(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.vault.SetupWithPhrase(context.Background(), []byte("not a recovery phrase"))
	assert.ErrorIs(t, err, ErrInvalidPhrase)
	assert.Empty(t, f.secure.Keys())
}

func TestCredentialVault_SetupWithPhrase_TrimsAndUsesMetadata(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	md := mock.NewMockMetadataProvider(ctrl)
	md.EXPECT().WalletCreationDate(gomock.Any()).Return(created, true, nil)

	f := newVaultFixture(t, withMetadata(md))

	cred, err := f.vault.SetupWithPhrase(ctx, []byte("  "+testPhrase+"\n"))
	require.NoError(t, err)
	assert.Equal(t, testPhrase, string(cred.Phrase))
	assert.True(t, cred.CreationTime.Equal(created))
}

func TestCredentialVault_SetupWithPhrase_MetadataErrorFallsBackToNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	md := mock.NewMockMetadataProvider(ctrl)
	md.EXPECT().WalletCreationDate(gomock.Any()).Return(time.Time{}, false, errors.New("unreadable"))

	f := newVaultFixture(t, withMetadata(md))

	cred, err := f.vault.SetupWithPhrase(context.Background(), []byte(testPhrase))
	require.NoError(t, err)
	assert.Equal(t, testStart.Unix(), cred.CreationTime.Unix())
}

func TestCredentialVault_Setup_FailureWipesCredential(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	accounts := mock.NewMockAccountFactory(ctrl)
	accounts.EXPECT().
		CreateFromPhrase(gomock.Any(), gomock.Any(), gomock.Any(), true).
		Return(nil, errors.New("derivation failed"))

	secure := store.NewMemorySecureStore()
	vault := NewCredentialVault(secure, nil, accounts, hd.NewKeyFactory(), crypto.NewFastKeyChainService(),
		VaultOptions{Mainnet: true}, logger.Nop())

	_, err := vault.SetupWithPhrase(ctx, []byte(testPhrase))
	assert.ErrorIs(t, err, ErrFailedToCreateAccount)

	// остаётся только идентификатор устройства
	assert.Equal(t, []string{keyDeviceID}, secure.Keys())

	_, err = vault.GetPhrase(ctx)
	assert.ErrorIs(t, err, ErrPhraseNotFound)
}

func TestCredentialVault_Setup_GenerateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	keychain := mock.NewMockKeyChainService(ctrl)
	keychain.EXPECT().GeneratePhrase().Return(nil, errors.New("entropy"))

	secure := store.NewMemorySecureStore()
	vault := NewCredentialVault(secure, nil, hd.NewAccountFactory(), hd.NewKeyFactory(), keychain,
		VaultOptions{}, logger.Nop())

	_, err := vault.SetupWithGeneratedPhrase(context.Background())
	assert.ErrorIs(t, err, ErrFailedToGeneratePhrase)
	assert.Empty(t, secure.Keys())
}

func TestCredentialVault_Setup_NotifiesChanges(t *testing.T) {
	f := newVaultFixture(t)
	before := f.vault.Changes().Version()

	f.setup(t)
	assert.Greater(t, f.vault.Changes().Version(), before)
}

// ── Migration ────────────────────────────────────────────────────────────────

func seedLegacy(t *testing.T, f *vaultFixture, values map[string]string) {
	t.Helper()
	for k, v := range values {
		require.NoError(t, f.legacy.Put(k, []byte(v)))
	}
}

func TestCredentialVault_MigrateLegacyData(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	auth := &approvingAuthenticator{legacy: f.legacy}
	f.vault.auth = auth

	created := time.Date(2020, time.February, 2, 2, 2, 2, 0, time.UTC)
	lockedAt := testStart.Add(-time.Minute).Truncate(time.Millisecond)
	seedLegacy(t, f, map[string]string{
		legacyKeyPhrase:        testPhrase,
		legacyKeyCreationTime:  strconv.FormatInt(created.Unix(), 10),
		legacyKeyToken:         "legacy-token",
		legacyKeyPIN:           "123456",
		legacyKeyFailCount:     "3",
		legacyKeyFailTimestamp: strconv.FormatInt(lockedAt.UnixMilli(), 10),
	})

	require.True(t, f.vault.IsMigrationRequired(ctx))

	migrated, err := f.vault.MigrateLegacyData(ctx)
	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Equal(t, 1, auth.calls)
	assert.False(t, f.vault.IsMigrationRequired(ctx))

	account, err := f.vault.GetAccount(ctx)
	require.NoError(t, err)
	assert.True(t, account.Timestamp().Equal(created))

	creation, err := f.vault.CreationTime(ctx)
	require.NoError(t, err)
	assert.True(t, creation.Equal(created))

	token, err := f.vault.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "legacy-token", token)

	ok, err := f.vault.CheckPIN(ctx, "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	w, err := f.vault.LockoutWindow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, w.FailCount)
	assert.True(t, w.FailTimestamp.Equal(lockedAt))

	// старое хранилище удалено к моменту возврата
	assert.False(t, f.legacy.Exists(ctx))
}

func TestCredentialVault_MigrateLegacyData_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	auth := &approvingAuthenticator{legacy: f.legacy}
	f.vault.auth = auth
	seedLegacy(t, f, map[string]string{legacyKeyPhrase: testPhrase})

	first, err := f.vault.MigrateLegacyData(ctx)
	require.NoError(t, err)
	accountBefore, err := f.secure.GetBytes(ctx, keyAccount)
	require.NoError(t, err)

	second, err := f.vault.MigrateLegacyData(ctx)
	require.NoError(t, err)
	accountAfter, err := f.secure.GetBytes(ctx, keyAccount)
	require.NoError(t, err)

	assert.True(t, first)
	assert.True(t, second)
	assert.Equal(t, accountBefore, accountAfter)
	assert.Equal(t, 1, auth.calls, "повторная миграция не должна спрашивать пользователя")
}

func TestCredentialVault_MigrateLegacyData_MissingCreationTimeUsesEpoch(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.vault.auth = &approvingAuthenticator{legacy: f.legacy}
	seedLegacy(t, f, map[string]string{legacyKeyPhrase: testPhrase})

	_, err := f.vault.MigrateLegacyData(ctx)
	require.NoError(t, err)

	creation, err := f.vault.CreationTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), creation.Unix())
}

func TestCredentialVault_MigrateLegacyData_NothingToMigrate(t *testing.T) {
	f := newVaultFixture(t)

	migrated, err := f.vault.MigrateLegacyData(context.Background())
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.False(t, f.vault.IsMigrationRequired(context.Background()))
}

func TestCredentialVault_MigrateLegacyData_AuthDenied(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthenticator(ctrl)
	auth.EXPECT().Authenticate(gomock.Any()).Return(ErrAuthDenied)

	f := newVaultFixture(t, withAuthenticator(auth))
	seedLegacy(t, f, map[string]string{legacyKeyPhrase: testPhrase})

	migrated, err := f.vault.MigrateLegacyData(ctx)
	assert.False(t, migrated)
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.ErrorIs(t, err, ErrAuthDenied)

	assert.True(t, f.legacy.Exists(ctx), "данные старой версии остаются для повторной попытки")
	assert.True(t, f.vault.IsMigrationRequired(ctx))
}

func TestCredentialVault_MigrateLegacyData_BadCreationTimeKeepsLegacy(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.vault.auth = &approvingAuthenticator{legacy: f.legacy}
	seedLegacy(t, f, map[string]string{
		legacyKeyPhrase:       testPhrase,
		legacyKeyCreationTime: "yesterday",
	})

	_, err := f.vault.MigrateLegacyData(ctx)
	assert.ErrorIs(t, err, ErrMigrationFailed)

	_, err = f.secure.GetBytes(ctx, keyPhrase)
	assert.ErrorIs(t, err, store.ErrKeyNotFound, "скопированная фраза должна быть удалена")
	assert.True(t, f.legacy.Exists(ctx))
}

func TestCredentialVault_GetPhrase_CopiesLegacyPhrase(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.vault.auth = &approvingAuthenticator{legacy: f.legacy}
	seedLegacy(t, f, map[string]string{legacyKeyPhrase: testPhrase})

	phrase, err := f.vault.GetPhrase(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPhrase, string(phrase))

	stored, err := f.secure.GetBytes(ctx, keyPhrase)
	require.NoError(t, err)
	assert.Equal(t, phrase, stored)
}

func TestCredentialVault_GetPhrase_NoAuthenticator(t *testing.T) {
	f := newVaultFixture(t)
	seedLegacy(t, f, map[string]string{legacyKeyPhrase: testPhrase})

	_, err := f.vault.GetPhrase(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

// ── Account ──────────────────────────────────────────────────────────────────

func TestCredentialVault_GetAccount_NoAccount(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.vault.GetAccount(context.Background())
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestCredentialVault_UpdateAccount_RejectsGarbage(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.setup(t)

	before, err := f.secure.GetBytes(ctx, keyAccount)
	require.NoError(t, err)

	err = f.vault.UpdateAccount(ctx, []byte("garbage"))
	assert.ErrorIs(t, err, ErrInvalidAccount)

	after, err := f.secure.GetBytes(ctx, keyAccount)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCredentialVault_CheckAccountInvalidated_Recreates(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.setup(t)
	require.NoError(t, f.secure.PutBytes(ctx, keyAccount, []byte("corrupted")))

	require.NoError(t, f.vault.CheckAccountInvalidated(ctx))
	assert.False(t, f.vault.AccountInvalidated())

	_, err := f.vault.GetAccount(ctx)
	assert.NoError(t, err)
}

func TestCredentialVault_CheckAccountInvalidated_WithoutPhrase(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	require.NoError(t, f.secure.PutBytes(ctx, keyAccount, []byte("corrupted")))

	require.NoError(t, f.vault.CheckAccountInvalidated(ctx))
	assert.True(t, f.vault.AccountInvalidated())

	// успешная установка снимает флаг
	require.NoError(t, f.secure.Delete(ctx, keyAccount))
	f.setup(t)
	assert.False(t, f.vault.AccountInvalidated())
}

func TestCredentialVault_DeviceID_Persisted(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)

	id, err := f.vault.DeviceID(ctx)
	require.NoError(t, err)
	assert.Len(t, id, 36)

	again, err := f.vault.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	other := NewCredentialVault(f.secure, nil, hd.NewAccountFactory(), hd.NewKeyFactory(),
		crypto.NewFastKeyChainService(), VaultOptions{}, logger.Nop())
	fromStore, err := other.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, fromStore)
}

func TestCredentialVault_PlatformSignal(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	assert.True(t, f.vault.PhraseKeyValid(ctx))
	assert.False(t, f.vault.RequiresUninstall(ctx))

	f.secure.SetAvailability(store.Availability{Valid: false, RequiresUninstall: true})
	assert.False(t, f.vault.PhraseKeyValid(ctx))
	assert.True(t, f.vault.RequiresUninstall(ctx))
}

// ── PIN ──────────────────────────────────────────────────────────────────────

func TestCredentialVault_ConfigurePIN(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)

	err := f.vault.ConfigurePIN(ctx, "123456")
	assert.ErrorIs(t, err, ErrPhraseNotFound, "без фразы PIN не задаётся")

	f.setup(t)
	require.NoError(t, f.vault.PutFailCount(ctx, 2))

	for _, bad := range []string{"12345", "1234567", "12a456", ""} {
		assert.ErrorIs(t, f.vault.ConfigurePIN(ctx, bad), ErrInvalidPIN, "pin %q", bad)
	}

	require.NoError(t, f.vault.ConfigurePIN(ctx, "123456"))
	assert.True(t, f.vault.HasPIN(ctx))
	assert.False(t, f.vault.PINNeedsUpgrade(ctx))

	ok, err := f.vault.CheckPIN(ctx, "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.vault.CheckPIN(ctx, "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := f.vault.FailCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCredentialVault_CheckPIN_NoPIN(t *testing.T) {
	f := newVaultFixture(t)

	ok, err := f.vault.CheckPIN(context.Background(), "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, f.vault.HasPIN(context.Background()))
}

func TestCredentialVault_PINNeedsUpgrade(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	require.NoError(t, f.secure.PutString(ctx, keyPINLength, "4"))

	assert.True(t, f.vault.PINNeedsUpgrade(ctx))
}

func TestCredentialVault_ClearPIN(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.setup(t)
	require.NoError(t, f.vault.ConfigurePIN(ctx, "123456"))
	require.NoError(t, f.vault.PutFailCount(ctx, 4))
	require.NoError(t, f.vault.PutFailTimestamp(ctx, testStart))

	err := f.vault.ClearPIN(ctx, []byte("wrong phrase"))
	assert.ErrorIs(t, err, ErrPhraseMismatch)
	assert.True(t, f.vault.HasPIN(ctx))

	require.NoError(t, f.vault.ClearPIN(ctx, []byte(testPhrase+" ")))
	assert.False(t, f.vault.HasPIN(ctx))

	w, err := f.vault.LockoutWindow(ctx)
	require.NoError(t, err)
	assert.Zero(t, w.FailCount)
	assert.False(t, w.Active())
}

// ── Lockout counters ─────────────────────────────────────────────────────────

func TestCredentialVault_FailTimestamp_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)

	ts, err := f.vault.FailTimestamp(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	require.NoError(t, f.vault.PutFailTimestamp(ctx, testStart))
	ts, err = f.vault.FailTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, testStart.UnixMilli(), ts.UnixMilli())

	require.NoError(t, f.vault.PutFailTimestamp(ctx, time.Time{}))
	raw, err := f.secure.GetString(ctx, keyFailTimestamp)
	require.NoError(t, err)
	assert.Equal(t, "0", raw)

	ts, err = f.vault.FailTimestamp(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestCredentialVault_Token(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)

	_, err := f.vault.Token(ctx)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	require.NoError(t, f.vault.PutToken(ctx, "tok"))
	token, err := f.vault.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, f.vault.RemoveToken(ctx))
	_, err = f.vault.Token(ctx)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestCredentialVault_JWT(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)

	_, err := f.vault.JWT(ctx)
	assert.ErrorIs(t, err, ErrNoValidJWT)

	require.NoError(t, f.vault.PutJWT(ctx, "jwt-token", testStart.Add(time.Hour)))

	token, err := f.vault.JWT(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	// за 10 секунд до истечения токен уже считается недействительным
	f.clock.Advance(time.Hour - 5*time.Second)
	_, err = f.vault.JWT(ctx)
	assert.ErrorIs(t, err, ErrNoValidJWT)
}

func TestCredentialVault_JWT_ReadsStoredExpiry(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	require.NoError(t, f.vault.PutJWT(ctx, "jwt-token", testStart.Add(time.Minute)))

	// новый экземпляр без кэша читает срок из хранилища
	fresh := NewCredentialVault(f.secure, nil, hd.NewAccountFactory(), hd.NewKeyFactory(),
		crypto.NewFastKeyChainService(), VaultOptions{Clock: f.clock}, logger.Nop())

	token, err := fresh.JWT(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestCredentialVault_JWT_BadStoredExpiry(t *testing.T) {
	tests := []struct {
		name   string
		rawExp string
		stored bool
	}{
		{name: "malformed", rawExp: "tomorrow", stored: true},
		{name: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newVaultFixture(t)
			require.NoError(t, f.secure.PutString(ctx, keyJWT, "jwt-token"))
			if tt.stored {
				require.NoError(t, f.secure.PutString(ctx, keyJWTExp, tt.rawExp))
			}

			_, err := f.vault.JWT(ctx)
			assert.ErrorIs(t, err, ErrNoValidJWT)

			// после сохранения нового токена всё работает
			require.NoError(t, f.vault.PutJWT(ctx, "fresh", testStart.Add(time.Hour)))
			token, err := f.vault.JWT(ctx)
			require.NoError(t, err)
			assert.Equal(t, "fresh", token)
		})
	}
}

// ── Wipe ─────────────────────────────────────────────────────────────────────

func TestCredentialVault_Wipe(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.setup(t)
	require.NoError(t, f.vault.ConfigurePIN(ctx, "123456"))
	require.NoError(t, f.vault.PutToken(ctx, "tok"))
	require.NoError(t, f.vault.PutJWT(ctx, "jwt", testStart.Add(time.Hour)))
	require.NoError(t, f.legacy.Put(legacyKeyToken, []byte("old")))

	require.NoError(t, f.vault.Wipe(ctx))

	assert.Equal(t, []string{keyDeviceID}, f.secure.Keys())
	assert.False(t, f.legacy.Exists(ctx))

	_, err := f.vault.Token(ctx)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
	_, err = f.vault.JWT(ctx)
	assert.ErrorIs(t, err, ErrNoValidJWT)
	_, err = f.vault.GetAccount(ctx)
	assert.ErrorIs(t, err, ErrNoAccount)
}
