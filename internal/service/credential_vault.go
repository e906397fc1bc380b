// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/clock"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/stream"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Secure store keys.
const (
	keyAccount       = "account"
	keyPhrase        = "phrase"
	keyAuthKey       = "authKey"
	keyCreationTime  = "creationTimeSeconds"
	keyToken         = "token"
	keyJWT           = "bdbJwt"
	keyJWTExp        = "bdbJwtExp"
	keyPINCode       = "pinCode"
	keyPINLength     = "pinLength"
	keyFailCount     = "failCount"
	keyFailTimestamp = "failTimestamp"
	keyDeviceID      = "deviceId"
)

// Legacy store keys. Values are plain strings.
const (
	legacyKeyPhrase        = store.LegacyPhraseKey
	legacyKeyCreationTime  = "creationTime"
	legacyKeyToken         = "token"
	legacyKeyPIN           = "pinCode"
	legacyKeyFailCount     = "failCount"
	legacyKeyFailTimestamp = "failTimestamp"
)

// jwtExpiryPadding treats a JWT as expired slightly before its exp claim.
const jwtExpiryPadding = 10 * time.Second

var credentialKeys = []string{
	keyAccount, keyPhrase, keyAuthKey, keyCreationTime, keyPINCode, keyPINLength,
}

var sessionKeys = []string{
	keyToken, keyJWT, keyJWTExp, keyFailCount, keyFailTimestamp,
}

// VaultOptions configures a CredentialVault.
type VaultOptions struct {
	// DeviceID pins the device identifier. When empty a UUIDv7 is generated
	// once and persisted.
	DeviceID string
	Mainnet  bool

	Authenticator Authenticator
	Metadata      MetadataProvider
	// Clock stamps account creation times. Defaults to the system clock.
	Clock clock.TimeSource
}

// CredentialVault owns the phrase, the derived account and API key, the
// PIN hash, the lockout counters and the cached backend tokens.
//
// Setup and migration are serialized by a single semaphore. All other
// getters and setters go straight to the secure store.
type CredentialVault struct {
	store    store.SecureStore
	legacy   store.LegacyStore
	accounts chain.AccountFactory
	keys     chain.KeyFactory
	keychain crypto.KeyChainService
	auth     Authenticator
	metadata MetadataProvider
	clock    clock.TimeSource
	mainnet  bool
	logger   *logger.Logger

	initSem     *semaphore.Weighted
	invalidated atomic.Bool
	changes     *stream.Signal

	mu       sync.Mutex
	deviceID string
	token    *string
	jwt      *models.JWT
}

// NewCredentialVault creates a vault on top of the secure store. legacy may
// be nil when no earlier release ever ran on the device.
func NewCredentialVault(
	secure store.SecureStore,
	legacy store.LegacyStore,
	accounts chain.AccountFactory,
	keys chain.KeyFactory,
	keychain crypto.KeyChainService,
	opts VaultOptions,
	log *logger.Logger,
) *CredentialVault {
	tc := opts.Clock
	if tc == nil {
		tc = clock.System{}
	}

	return &CredentialVault{
		store:    secure,
		legacy:   legacy,
		accounts: accounts,
		keys:     keys,
		keychain: keychain,
		auth:     opts.Authenticator,
		metadata: opts.Metadata,
		clock:    tc,
		mainnet:  opts.Mainnet,
		logger:   log,
		initSem:  semaphore.NewWeighted(1),
		changes:  stream.NewSignal(),
		deviceID: opts.DeviceID,
	}
}

// Changes fires whenever the vault changed something the user state is
// computed from.
func (v *CredentialVault) Changes() *stream.Signal {
	return v.changes
}

// ── Phrase ──────────────────────────────────────────────────────────────────

// GetPhrase returns the recovery phrase. When only the legacy store holds
// it, reading may require an authentication prompt; the phrase is copied
// into the secure store afterwards. ErrPhraseNotFound is returned when no
// phrase exists and ErrAuthRequired when the user denied the prompt.
func (v *CredentialVault) GetPhrase(ctx context.Context) ([]byte, error) {
	phrase, err := v.store.GetBytes(ctx, keyPhrase)
	switch {
	case err == nil:
		return phrase, nil
	case !errors.Is(err, store.ErrKeyNotFound):
		return nil, fmt.Errorf("read phrase: %w", err)
	}

	phrase, err = v.legacyPhrase(ctx)
	if err != nil {
		return nil, err
	}

	if err = v.store.PutBytes(ctx, keyPhrase, phrase); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToPersistPhrase, err)
	}
	return phrase, nil
}

func (v *CredentialVault) legacyPhrase(ctx context.Context) ([]byte, error) {
	if v.legacy == nil || !v.legacy.Exists(ctx) {
		return nil, ErrPhraseNotFound
	}

	phrase, err := v.legacy.GetBytes(ctx, legacyKeyPhrase)
	if errors.Is(err, store.ErrUserNotAuthenticated) {
		if v.auth == nil {
			return nil, ErrAuthRequired
		}

		v.logger.Info().Str("func", "CredentialVault.legacyPhrase").Msg("attempting authentication")
		if authErr := v.auth.Authenticate(ctx); authErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrAuthRequired, authErr)
		}
		phrase, err = v.legacy.GetBytes(ctx, legacyKeyPhrase)
	}

	switch {
	case err == nil:
		return phrase, nil
	case errors.Is(err, store.ErrKeyNotFound):
		return nil, ErrPhraseNotFound
	case errors.Is(err, store.ErrUserNotAuthenticated):
		return nil, ErrAuthRequired
	default:
		return nil, fmt.Errorf("read legacy phrase: %w", err)
	}
}

// ── Setup ───────────────────────────────────────────────────────────────────

// SetupWithGeneratedPhrase creates a new account from a freshly generated
// phrase.
func (v *CredentialVault) SetupWithGeneratedPhrase(ctx context.Context) (models.Credential, error) {
	creation := v.clock.Now()

	phrase, err := v.keychain.GeneratePhrase()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %v", ErrFailedToGeneratePhrase, err)
	}
	if !v.keychain.ValidatePhrase(phrase) {
		return models.Credential{}, fmt.Errorf("%w: generated phrase failed validation", ErrFailedToGeneratePhrase)
	}

	return v.initAccount(ctx, phrase, creation, nil)
}

// SetupWithPhrase restores an account from a phrase supplied by the user.
// The creation date comes from wallet metadata when available.
func (v *CredentialVault) SetupWithPhrase(ctx context.Context, phrase []byte) (models.Credential, error) {
	phrase = []byte(strings.TrimSpace(string(phrase)))
	if !v.keychain.ValidatePhrase(phrase) {
		return models.Credential{}, ErrInvalidPhrase
	}

	apiKey, err := v.keys.CreateForAPIAuth(phrase)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %v", ErrFailedToCreateAPIKey, err)
	}

	creation := v.clock.Now()
	if v.metadata != nil {
		created, ok, mdErr := v.metadata.WalletCreationDate(ctx)
		switch {
		case mdErr != nil:
			v.logger.Warn().Err(mdErr).
				Str("func", "CredentialVault.SetupWithPhrase").
				Msg("wallet metadata unavailable, using current time as creation date")
		case ok:
			creation = created
		}
	}

	return v.initAccount(ctx, phrase, creation, apiKey)
}

func (v *CredentialVault) initAccount(ctx context.Context, phrase []byte, creation time.Time, apiKey chain.Key) (cred models.Credential, err error) {
	if err = v.initSem.Acquire(ctx, 1); err != nil {
		return cred, err
	}
	defer v.initSem.Release(1)

	switch _, phraseErr := v.GetPhrase(ctx); {
	case phraseErr == nil:
		return cred, ErrPhraseAlreadyExists
	case !errors.Is(phraseErr, ErrPhraseNotFound):
		return cred, phraseErr
	}

	log := v.logger.With().Str("func", "CredentialVault.initAccount").Logger()

	defer func() {
		if err == nil {
			return
		}
		log.Error().Err(err).Msg("account setup failed, wiping credential")
		if wipeErr := v.wipeCredential(ctx, true); wipeErr != nil {
			log.Error().Err(wipeErr).Msg("wipe after failed setup")
		}
	}()

	creation = creation.Truncate(time.Second)

	deviceID, err := v.DeviceID(ctx)
	if err != nil {
		return cred, fmt.Errorf("%w: device id: %v", ErrFailedToCreateAccount, err)
	}

	if err = v.store.PutBytes(ctx, keyPhrase, phrase); err != nil {
		return cred, fmt.Errorf("%w: %v", ErrFailedToPersistPhrase, err)
	}
	stored, err := v.store.GetBytes(ctx, keyPhrase)
	if err != nil {
		return cred, fmt.Errorf("%w: %v", ErrFailedToPersistPhrase, err)
	}
	if !v.keychain.EqualSecret(stored, phrase) {
		return cred, fmt.Errorf("%w: stored phrase differs", ErrFailedToPersistPhrase)
	}

	account, err := v.accounts.CreateFromPhrase(stored, creation, deviceID, v.mainnet)
	if err != nil {
		return cred, fmt.Errorf("%w: %v", ErrFailedToCreateAccount, err)
	}

	if apiKey == nil {
		if apiKey, err = v.keys.CreateForAPIAuth(stored); err != nil {
			return cred, fmt.Errorf("%w: %v", ErrFailedToCreateAPIKey, err)
		}
	}

	if err = v.writeAccount(ctx, account.Serialize(), apiKey.EncodeAsPrivate(), creation); err != nil {
		return cred, fmt.Errorf("%w: %v", ErrFailedToCreateValidWallet, err)
	}
	if !v.validateAccount(ctx, stored, account, apiKey, creation) {
		return cred, ErrFailedToCreateValidWallet
	}

	v.invalidated.Store(false)
	v.changes.Notify()
	log.Info().Msg("account created")

	return models.Credential{
		Phrase:       stored,
		AuthKey:      apiKey.EncodeAsPrivate(),
		Account:      account.Serialize(),
		CreationTime: creation,
	}, nil
}

func (v *CredentialVault) writeAccount(ctx context.Context, account, authKey []byte, creation time.Time) error {
	if err := v.store.PutBytes(ctx, keyAccount, account); err != nil {
		return err
	}
	if err := v.store.PutBytes(ctx, keyAuthKey, authKey); err != nil {
		return err
	}
	return v.store.PutString(ctx, keyCreationTime, strconv.FormatInt(creation.Unix(), 10))
}

// validateAccount reads every written value back and compares it with what
// setup derived.
func (v *CredentialVault) validateAccount(ctx context.Context, phrase []byte, account chain.Account, apiKey chain.Key, creation time.Time) bool {
	if !v.keychain.ValidatePhrase(phrase) {
		return false
	}

	storedAccount, err := v.store.GetBytes(ctx, keyAccount)
	if err != nil || !v.keychain.EqualSecret(storedAccount, account.Serialize()) {
		return false
	}

	storedKey, err := v.store.GetBytes(ctx, keyAuthKey)
	if err != nil || !v.keychain.EqualSecret(storedKey, apiKey.EncodeAsPrivate()) {
		return false
	}

	storedCreation, err := v.CreationTime(ctx)
	return err == nil && storedCreation.Equal(creation)
}

// ── Migration ───────────────────────────────────────────────────────────────

// IsMigrationRequired reports whether legacy data exists and no account
// was created yet.
func (v *CredentialVault) IsMigrationRequired(ctx context.Context) bool {
	if v.legacy == nil || !v.legacy.Exists(ctx) {
		return false
	}
	_, err := v.store.GetBytes(ctx, keyAccount)
	return errors.Is(err, store.ErrKeyNotFound)
}

// MigrateLegacyData rebuilds the account from the legacy phrase and creation
// time and copies the token, PIN and lockout counters. It returns false
// without error when there is nothing to migrate. On failure the credential
// is wiped and the legacy data is left in place for another attempt.
// An account that already exists is never replaced.
func (v *CredentialVault) MigrateLegacyData(ctx context.Context) (migrated bool, err error) {
	if err = v.initSem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer v.initSem.Release(1)

	log := v.logger.With().Str("func", "CredentialVault.MigrateLegacyData").Logger()

	if _, accErr := v.store.GetBytes(ctx, keyAccount); accErr == nil {
		return true, nil
	}
	if v.legacy == nil || !v.legacy.Exists(ctx) {
		return false, nil
	}

	phrase, err := v.GetPhrase(ctx)
	switch {
	case errors.Is(err, ErrPhraseNotFound):
		return false, nil
	case err != nil:
		return false, err
	}

	defer func() {
		if err == nil {
			return
		}
		log.Error().Err(err).Msg("migration failed, wiping credential")
		if wipeErr := v.wipeCredential(ctx, false); wipeErr != nil {
			log.Error().Err(wipeErr).Msg("wipe after failed migration")
		}
	}()

	creation := time.Unix(0, 0).UTC()
	if raw, getErr := v.legacy.GetString(ctx, legacyKeyCreationTime); getErr == nil {
		secs, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if parseErr != nil {
			return false, fmt.Errorf("%w: creation time: %v", ErrMigrationFailed, parseErr)
		}
		creation = time.Unix(secs, 0).UTC()
	}

	deviceID, err := v.DeviceID(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: device id: %v", ErrMigrationFailed, err)
	}

	account, err := v.accounts.CreateFromPhrase(phrase, creation, deviceID, v.mainnet)
	if err != nil {
		return false, fmt.Errorf("%w: %w: %v", ErrMigrationFailed, ErrFailedToCreateAccount, err)
	}
	apiKey, err := v.keys.CreateForAPIAuth(phrase)
	if err != nil {
		return false, fmt.Errorf("%w: %w: %v", ErrMigrationFailed, ErrFailedToCreateAPIKey, err)
	}
	if err = v.writeAccount(ctx, account.Serialize(), apiKey.EncodeAsPrivate(), creation); err != nil {
		return false, fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}

	v.migrateSecondaryFields(ctx)

	// the account is already written, so a failed wipe does not fail the migration
	if wipeErr := v.legacy.Wipe(context.WithoutCancel(ctx)); wipeErr != nil {
		log.Error().Err(wipeErr).Msg("failed to delete legacy store after migration")
	}

	v.invalidated.Store(false)
	v.changes.Notify()
	log.Info().Msg("legacy data migrated")
	return true, nil
}

// migrateSecondaryFields copies values that do not affect the account.
// Failures are logged and skipped.
func (v *CredentialVault) migrateSecondaryFields(ctx context.Context) {
	log := v.logger.With().Str("func", "CredentialVault.migrateSecondaryFields").Logger()

	if token, err := v.legacy.GetString(ctx, legacyKeyToken); err == nil && token != "" {
		if err = v.PutToken(ctx, token); err != nil {
			log.Warn().Err(err).Msg("token not migrated")
		}
	}

	if pin, err := v.legacy.GetString(ctx, legacyKeyPIN); err == nil && pin != "" {
		if err = v.storePIN(ctx, pin); err != nil {
			log.Warn().Err(err).Msg("pin not migrated")
		}
	}

	if raw, err := v.legacy.GetString(ctx, legacyKeyFailCount); err == nil {
		if count, parseErr := strconv.Atoi(strings.TrimSpace(raw)); parseErr == nil {
			if err = v.PutFailCount(ctx, count); err != nil {
				log.Warn().Err(err).Msg("fail count not migrated")
			}
		}
	}

	if raw, err := v.legacy.GetString(ctx, legacyKeyFailTimestamp); err == nil {
		if ms, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); parseErr == nil && ms > 0 {
			if err = v.PutFailTimestamp(ctx, time.UnixMilli(ms)); err != nil {
				log.Warn().Err(err).Msg("fail timestamp not migrated")
			}
		}
	}
}

// ── Account ─────────────────────────────────────────────────────────────────

// CheckAccountInvalidated verifies that the stored account still
// deserializes. If it does not, the account is re-derived from the phrase;
// when that is impossible the credential is flagged invalidated until the
// next successful setup.
func (v *CredentialVault) CheckAccountInvalidated(ctx context.Context) error {
	data, err := v.store.GetBytes(ctx, keyAccount)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("read account: %w", err)
	}

	deviceID, err := v.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("device id: %w", err)
	}
	if _, err = v.accounts.CreateFromSerialization(data, deviceID); err == nil {
		return nil
	}

	log := v.logger.With().Str("func", "CredentialVault.CheckAccountInvalidated").Logger()
	log.Info().Err(err).Msg("account needs to be re-created from phrase")

	phrase, err := v.GetPhrase(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("phrase unavailable, account invalidated")
		v.markInvalidated()
		return nil
	}

	creation, err := v.CreationTime(ctx)
	if err != nil {
		creation = time.Unix(0, 0).UTC()
	}

	account, err := v.accounts.CreateFromPhrase(phrase, creation, deviceID, v.mainnet)
	if err != nil {
		log.Warn().Err(err).Msg("account re-creation failed, account invalidated")
		v.markInvalidated()
		return nil
	}

	if err = v.store.PutBytes(ctx, keyAccount, account.Serialize()); err != nil {
		return fmt.Errorf("write account: %w", err)
	}
	log.Info().Msg("account re-created")
	return nil
}

func (v *CredentialVault) markInvalidated() {
	if !v.invalidated.Swap(true) {
		v.changes.Notify()
	}
}

// AccountInvalidated reports whether the account was found unusable and
// could not be recovered.
func (v *CredentialVault) AccountInvalidated() bool {
	return v.invalidated.Load()
}

// GetAccount returns the stored account. ErrNoAccount is returned when
// none was created yet.
func (v *CredentialVault) GetAccount(ctx context.Context) (chain.Account, error) {
	data, err := v.store.GetBytes(ctx, keyAccount)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return nil, ErrNoAccount
	case err != nil:
		return nil, fmt.Errorf("read account: %w", err)
	}

	deviceID, err := v.DeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("device id: %w", err)
	}

	account, err := v.accounts.CreateFromSerialization(data, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	return account, nil
}

// UpdateAccount replaces the stored account bytes. Bytes that do not
// deserialize are rejected.
func (v *CredentialVault) UpdateAccount(ctx context.Context, data []byte) error {
	deviceID, err := v.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("device id: %w", err)
	}
	if _, err = v.accounts.CreateFromSerialization(data, deviceID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	return v.store.PutBytes(ctx, keyAccount, data)
}

func (v *CredentialVault) GetAuthKey(ctx context.Context) ([]byte, error) {
	return v.store.GetBytes(ctx, keyAuthKey)
}

// CreationTime returns the account creation time, second precision.
func (v *CredentialVault) CreationTime(ctx context.Context) (time.Time, error) {
	raw, err := v.store.GetString(ctx, keyCreationTime)
	if err != nil {
		return time.Time{}, err
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse creation time: %w", err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

// DeviceID returns the device identifier, generating and persisting one on
// first use.
func (v *CredentialVault) DeviceID(ctx context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.deviceID != "" {
		return v.deviceID, nil
	}

	id, err := v.store.GetString(ctx, keyDeviceID)
	switch {
	case err == nil && id != "":
		v.deviceID = id
		return id, nil
	case err != nil && !errors.Is(err, store.ErrKeyNotFound):
		return "", err
	}

	id = utils.NewUUIDGenerator().Generate()
	if err = v.store.PutString(ctx, keyDeviceID, id); err != nil {
		return "", err
	}
	v.deviceID = id
	return id, nil
}

// ── Platform signal ─────────────────────────────────────────────────────────

// PhraseKeyValid reports whether the secure store key can still decrypt
// stored values.
func (v *CredentialVault) PhraseKeyValid(ctx context.Context) bool {
	return v.store.Availability(ctx).Valid
}

// RequiresUninstall reports whether the secure store cannot be recovered
// without resetting the installation.
func (v *CredentialVault) RequiresUninstall(ctx context.Context) bool {
	return v.store.Availability(ctx).RequiresUninstall
}

// ── PIN ─────────────────────────────────────────────────────────────────────

// ConfigurePIN stores the hash of a new PIN and resets the failure count.
// A phrase must exist.
func (v *CredentialVault) ConfigurePIN(ctx context.Context, pin string) error {
	if _, err := v.GetPhrase(ctx); err != nil {
		return fmt.Errorf("cannot set pin code: %w", err)
	}
	if !isPIN(pin, models.PINLength) {
		return ErrInvalidPIN
	}

	if err := v.storePIN(ctx, pin); err != nil {
		return err
	}
	return v.PutFailCount(ctx, 0)
}

func (v *CredentialVault) storePIN(ctx context.Context, pin string) error {
	hash, err := v.keychain.HashPIN(pin)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	if err = v.store.PutString(ctx, keyPINCode, hash); err != nil {
		return err
	}
	return v.store.PutString(ctx, keyPINLength, strconv.Itoa(len(pin)))
}

// CheckPIN reports whether pin matches the stored hash.
func (v *CredentialVault) CheckPIN(ctx context.Context, pin string) (bool, error) {
	hash, err := v.store.GetString(ctx, keyPINCode)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return v.keychain.VerifyPIN(pin, hash), nil
}

func (v *CredentialVault) HasPIN(ctx context.Context) bool {
	hash, err := v.store.GetString(ctx, keyPINCode)
	return err == nil && hash != ""
}

// PINNeedsUpgrade reports whether the stored PIN has a legacy length.
func (v *CredentialVault) PINNeedsUpgrade(ctx context.Context) bool {
	raw, err := v.store.GetString(ctx, keyPINLength)
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(raw)
	return err == nil && n != 0 && n != models.PINLength
}

// ClearPIN removes the PIN and the lockout counters. The caller must
// present the stored phrase.
func (v *CredentialVault) ClearPIN(ctx context.Context, phrase []byte) error {
	stored, err := v.GetPhrase(ctx)
	if err != nil {
		return fmt.Errorf("cannot clear pin code: %w", err)
	}
	if !v.keychain.EqualSecret([]byte(strings.TrimSpace(string(phrase))), stored) {
		return ErrPhraseMismatch
	}

	if err = v.store.Delete(ctx, keyPINCode, keyPINLength); err != nil {
		return err
	}
	return v.resetLockout(ctx)
}

// ── Lockout counters ────────────────────────────────────────────────────────

func (v *CredentialVault) FailCount(ctx context.Context) (int, error) {
	raw, err := v.store.GetString(ctx, keyFailCount)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return strconv.Atoi(raw)
}

func (v *CredentialVault) PutFailCount(ctx context.Context, count int) error {
	return v.store.PutString(ctx, keyFailCount, strconv.Itoa(count))
}

// FailTimestamp returns the time lockout started, or the zero time.
func (v *CredentialVault) FailTimestamp(ctx context.Context) (time.Time, error) {
	raw, err := v.store.GetString(ctx, keyFailTimestamp)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return time.Time{}, nil
	case err != nil:
		return time.Time{}, err
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms == 0 {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// PutFailTimestamp stores the lockout start. The zero time clears it.
func (v *CredentialVault) PutFailTimestamp(ctx context.Context, ts time.Time) error {
	var ms int64
	if !ts.IsZero() {
		ms = ts.UnixMilli()
	}
	return v.store.PutString(ctx, keyFailTimestamp, strconv.FormatInt(ms, 10))
}

// LockoutWindow returns the stored failure counters.
func (v *CredentialVault) LockoutWindow(ctx context.Context) (models.LockoutWindow, error) {
	count, err := v.FailCount(ctx)
	if err != nil {
		return models.LockoutWindow{}, err
	}
	ts, err := v.FailTimestamp(ctx)
	if err != nil {
		return models.LockoutWindow{}, err
	}
	return models.LockoutWindow{FailCount: count, FailTimestamp: ts}, nil
}

func (v *CredentialVault) resetLockout(ctx context.Context) error {
	if err := v.PutFailCount(ctx, 0); err != nil {
		return err
	}
	return v.PutFailTimestamp(ctx, time.Time{})
}

// ── Tokens ──────────────────────────────────────────────────────────────────

func (v *CredentialVault) Token(ctx context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.token != nil {
		return *v.token, nil
	}
	token, err := v.store.GetString(ctx, keyToken)
	if err != nil {
		return "", err
	}
	v.token = &token
	return token, nil
}

func (v *CredentialVault) PutToken(ctx context.Context, token string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.store.PutString(ctx, keyToken, token); err != nil {
		return err
	}
	v.token = &token
	return nil
}

func (v *CredentialVault) RemoveToken(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.store.Delete(ctx, keyToken); err != nil {
		return err
	}
	v.token = nil
	return nil
}

// JWT returns the cached backend token. ErrNoValidJWT is returned when none
// is stored or it expires within the padding.
func (v *CredentialVault) JWT(ctx context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.jwt == nil {
		token, err := v.store.GetString(ctx, keyJWT)
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", ErrNoValidJWT
		}
		if err != nil {
			return "", err
		}
		rawExp, err := v.store.GetString(ctx, keyJWTExp)
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", ErrNoValidJWT
		}
		if err != nil {
			return "", err
		}
		ms, err := strconv.ParseInt(strings.TrimSpace(rawExp), 10, 64)
		if err != nil {
			v.logger.Warn().Err(err).Str("func", "CredentialVault.JWT").Msg("stored jwt expiry is malformed")
			return "", ErrNoValidJWT
		}
		v.jwt = &models.JWT{Token: token, ExpiresAt: time.UnixMilli(ms)}
	}

	if !v.jwt.ExpiresAt.Add(-jwtExpiryPadding).After(v.clock.Now()) {
		return "", ErrNoValidJWT
	}
	return v.jwt.Token, nil
}

// PutJWT caches a backend token. A zero exp is read from the token's exp
// claim.
func (v *CredentialVault) PutJWT(ctx context.Context, token string, exp time.Time) error {
	if exp.IsZero() {
		var err error
		if exp, err = utils.JWTExpiry(token); err != nil {
			return fmt.Errorf("jwt expiry: %w", err)
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.store.PutString(ctx, keyJWT, token); err != nil {
		return err
	}
	if err := v.store.PutString(ctx, keyJWTExp, strconv.FormatInt(exp.UnixMilli(), 10)); err != nil {
		return err
	}
	v.jwt = &models.JWT{Token: token, ExpiresAt: exp}
	return nil
}

// ── Wipe ────────────────────────────────────────────────────────────────────

// Wipe deletes every credential value, the cached tokens and the legacy
// data. The device identifier survives.
func (v *CredentialVault) Wipe(ctx context.Context) error {
	err := v.wipeCredential(ctx, true)
	if delErr := v.store.Delete(ctx, sessionKeys...); delErr != nil {
		err = errors.Join(err, delErr)
	}

	v.mu.Lock()
	v.token = nil
	v.jwt = nil
	v.mu.Unlock()

	v.invalidated.Store(false)
	v.changes.Notify()
	return err
}

func (v *CredentialVault) wipeCredential(ctx context.Context, withLegacy bool) error {
	err := v.store.Delete(ctx, credentialKeys...)
	if withLegacy && v.legacy != nil {
		if legacyErr := v.legacy.Wipe(ctx); legacyErr != nil {
			err = errors.Join(err, legacyErr)
		}
	}
	return err
}

func isPIN(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
