package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const (
	testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	// twelve words with a bad checksum pass request validation
	badChecksumPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
)

// ── State ────────────────────────────────────────────────────────────────────

func TestGetUserState(t *testing.T) {
	tests := []struct {
		name  string
		state models.UserState
		want  string
	}{
		{name: "locked", state: models.Locked(), want: `{"state":"locked"}`},
		{name: "enabled", state: models.Enabled(), want: `{"state":"enabled"}`},
		{name: "disabled", state: models.Disabled(42), want: `{"state":"disabled","seconds_remaining":42}`},
		{name: "key store invalid", state: models.KeyStoreInvalid(models.InvalidReasonWipe), want: `{"state":"key_store_invalid","reason":"wipe"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.auth.state = tt.state

			rr := d.do(http.MethodGet, "/api/user/state", "")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.want, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

// ── Setup ────────────────────────────────────────────────────────────────────

func TestSetup(t *testing.T) {
	created := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name       string
		body       string
		setupErr   error
		wantStatus int
		wantPhrase string
		wantInput  string
	}{
		{
			name:       "generated phrase is returned once",
			wantStatus: http.StatusCreated,
			wantPhrase: testPhrase,
		},
		{
			name:       "empty object generates too",
			body:       `{}`,
			wantStatus: http.StatusCreated,
			wantPhrase: testPhrase,
		},
		{
			name:       "restored phrase is not echoed",
			body:       fmt.Sprintf(`{"phrase":%q}`, testPhrase),
			wantStatus: http.StatusCreated,
			wantInput:  testPhrase,
		},
		{
			name:       "phrase already exists",
			body:       fmt.Sprintf(`{"phrase":%q}`, testPhrase),
			setupErr:   service.ErrPhraseAlreadyExists,
			wantStatus: http.StatusConflict,
			wantInput:  testPhrase,
		},
		{
			name:       "invalid phrase",
			body:       fmt.Sprintf(`{"phrase":%q}`, badChecksumPhrase),
			setupErr:   fmt.Errorf("%w: checksum", service.ErrInvalidPhrase),
			wantStatus: http.StatusBadRequest,
			wantInput:  badChecksumPhrase,
		},
		{
			name:       "wrong word count is rejected before setup",
			body:       `{"phrase":"one two"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "persist failure hides details",
			setupErr:   fmt.Errorf("%w: disk full", service.ErrFailedToPersistPhrase),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			var got []byte
			d.auth.setupFn = func(phrase []byte) (models.Credential, error) {
				got = phrase
				if tt.setupErr != nil {
					return models.Credential{}, tt.setupErr
				}
				p := phrase
				if len(p) == 0 {
					p = []byte(testPhrase)
				}
				return models.Credential{Phrase: p, CreationTime: created}, nil
			}

			rr := d.do(http.MethodPost, "/api/user/setup", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantInput, string(got))
			if tt.wantStatus != http.StatusCreated {
				assert.NotContains(t, rr.Body.String(), "disk full")
				return
			}

			var resp models.SetupResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantPhrase, resp.Phrase)
			assert.Equal(t, created.Unix(), resp.CreationTime)
		})
	}
}

func TestSetup_InvalidJSON(t *testing.T) {
	d := newTestDeps(t)

	rr := d.do(http.MethodPost, "/api/user/setup", `{"phrase":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, d.calls.list(), "setup не должен вызываться")
}

func TestMigrate(t *testing.T) {
	d := newTestDeps(t)
	d.auth.migrated = true

	rr := d.do(http.MethodPost, "/api/user/migrate", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"migrated":true}`, rr.Body.String())

	d.auth.migrateErr = service.ErrMigrationFailed
	rr = d.do(http.MethodPost, "/api/user/migrate", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMigrationStatus(t *testing.T) {
	tests := []struct {
		name   string
		legacy bool
		want   string
	}{
		{name: "legacy data present", legacy: true, want: `{"required":true}`},
		{name: "nothing to migrate", legacy: false, want: `{"required":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.auth.legacy = tt.legacy

			rr := d.do(http.MethodGet, "/api/user/migrate", "")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.want, rr.Body.String())
			// проверка статуса не запускает миграцию
			assert.Equal(t, []string{"migration?"}, d.calls.list())
		})
	}
}

// ── PIN ──────────────────────────────────────────────────────────────────────

func TestConfigurePIN(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		pinErr     error
		wantStatus int
	}{
		{name: "ok", body: `{"pin":"123456"}`, wantStatus: http.StatusNoContent},
		{name: "wrong length", body: `{"pin":"12"}`, wantStatus: http.StatusBadRequest},
		{name: "legacy length is not accepted for setup", body: `{"pin":"1234"}`, wantStatus: http.StatusBadRequest},
		{name: "not digits", body: `{"pin":"12345a"}`, wantStatus: http.StatusBadRequest},
		{name: "no account", body: `{"pin":"123456"}`, pinErr: service.ErrPhraseNotFound, wantStatus: http.StatusNotFound},
		{name: "bad json", body: `pin=1`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.auth.pinErr = tt.pinErr

			rr := d.do(http.MethodPost, "/api/user/pin", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestVerifyPIN(t *testing.T) {
	tests := []struct {
		name         string
		verified     bool
		verifyErr    error
		state        models.UserState
		wantStatus   int
		wantResponse string
	}{
		{
			name:         "correct pin",
			verified:     true,
			state:        models.Enabled(),
			wantStatus:   http.StatusOK,
			wantResponse: `{"verified":true,"state":{"state":"enabled"}}`,
		},
		{
			// неверный PIN не ошибка, а ответ
			name:         "wrong pin",
			state:        models.Locked(),
			wantStatus:   http.StatusOK,
			wantResponse: `{"verified":false,"state":{"state":"locked"}}`,
		},
		{
			name:         "locked out",
			state:        models.Disabled(60),
			wantStatus:   http.StatusOK,
			wantResponse: `{"verified":false,"state":{"state":"disabled","seconds_remaining":60}}`,
		},
		{
			name:       "store failure",
			verifyErr:  errors.New("keychain unavailable"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.auth.state = tt.state
			d.auth.verifyFn = func(pin string) (bool, error) {
				assert.Equal(t, "000000", pin)
				return tt.verified, tt.verifyErr
			}

			rr := d.do(http.MethodPost, "/api/user/pin/verify", `{"pin":"000000"}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantResponse != "" {
				assert.JSONEq(t, tt.wantResponse, rr.Body.String())
			}
		})
	}
}

func TestClearPIN(t *testing.T) {
	d := newTestDeps(t)

	rr := d.do(http.MethodPost, "/api/user/pin/clear", fmt.Sprintf(`{"phrase":%q}`, testPhrase))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"clear:" + testPhrase}, d.calls.list())

	d.auth.clearErr = service.ErrPhraseMismatch
	rr = d.do(http.MethodPost, "/api/user/pin/clear", fmt.Sprintf(`{"phrase":%q}`, badChecksumPhrase))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = d.do(http.MethodPost, "/api/user/pin/clear", `{"phrase":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Len(t, d.calls.list(), 2, "пустая фраза не доходит до сервиса")
}

func TestVerifyPIN_LegacyLengthAccepted(t *testing.T) {
	d := newTestDeps(t)
	d.auth.verifyFn = func(pin string) (bool, error) { return pin == "1234", nil }

	rr := d.do(http.MethodPost, "/api/user/pin/verify", `{"pin":"1234"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"verified":true`)

	rr = d.do(http.MethodPost, "/api/user/pin/verify", `{"pin":"12"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── Lock / Unlock ────────────────────────────────────────────────────────────

func TestLockUnlock(t *testing.T) {
	d := newTestDeps(t)

	assert.Equal(t, http.StatusNoContent, d.do(http.MethodPost, "/api/user/lock", "").Code)
	assert.Equal(t, http.StatusNoContent, d.do(http.MethodPost, "/api/user/unlock", "").Code)
	assert.Equal(t, []string{"lock", "unlock"}, d.calls.list())
}

// ── Auth prompt ──────────────────────────────────────────────────────────────

func TestAuthPrompt(t *testing.T) {
	d := newTestDeps(t)

	rr := d.do(http.MethodGet, "/api/user/auth", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"pending":false}`, rr.Body.String())

	d.prompt.pending = true
	rr = d.do(http.MethodGet, "/api/user/auth", "")
	assert.JSONEq(t, `{"pending":true}`, rr.Body.String())

	rr = d.do(http.MethodPost, "/api/user/auth", `{"approved":true}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []bool{true}, d.prompt.resolved)
}

func TestAuthPrompt_NothingPending(t *testing.T) {
	d := newTestDeps(t)
	d.prompt.resolveErr = service.ErrNoPendingPrompt

	rr := d.do(http.MethodPost, "/api/user/auth", `{"approved":false}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), service.ErrNoPendingPrompt.Error())
}

// ── Wipe ─────────────────────────────────────────────────────────────────────

func TestWipe(t *testing.T) {
	d := newTestDeps(t)

	rr := d.do(http.MethodPost, "/api/user/wipe", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"session.wipe", "auth.wipe"}, d.calls.list(), "сначала сессия, затем учётные данные")
}

func TestWipe_SessionFails(t *testing.T) {
	d := newTestDeps(t)
	d.session.wipeErr = fmt.Errorf("%w: read-only", service.ErrStorageUnavailable)

	rr := d.do(http.MethodPost, "/api/user/wipe", "")

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, []string{"session.wipe"}, d.calls.list(), "учётные данные не трогаем")
}
