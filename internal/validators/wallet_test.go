// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("abandon ", n))
}

func TestNewWalletRequestValidator(t *testing.T) {
	v := NewWalletRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewWalletRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerAndValueBehaveTheSame(t *testing.T) {
	v := NewWalletRequestValidator()
	req := models.PINRequest{PIN: "123456"}

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// ---------------------------------------------------------------------------
// PIN
// ---------------------------------------------------------------------------

func TestValidate_PIN(t *testing.T) {
	tests := []struct {
		name   string
		pin    string
		fields []string
		want   error
	}{
		{name: "six digits", pin: "012345"},
		{name: "too short", pin: "12345", want: ErrInvalidPIN},
		{name: "letters", pin: "12a456", want: ErrInvalidPIN},
		{name: "legacy length rejected for configure", pin: "1234", want: ErrInvalidPIN},
		{name: "legacy length accepted for verify", pin: "1234", fields: []string{FieldPINCandidate}},
		{name: "candidate garbage", pin: "12", fields: []string{FieldPINCandidate}, want: ErrInvalidPIN},
		{name: "unknown field", pin: "123456", fields: []string{"bogus"}, want: ErrUnknownField},
	}

	v := NewWalletRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.PINRequest{PIN: tt.pin}, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Phrase
// ---------------------------------------------------------------------------

func TestValidate_SetupRequest(t *testing.T) {
	v := NewWalletRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SetupRequest{}))
	assert.NoError(t, v.Validate(ctx, models.SetupRequest{Phrase: words(12)}))
	assert.NoError(t, v.Validate(ctx, models.SetupRequest{Phrase: words(24)}))
	assert.ErrorIs(t, v.Validate(ctx, models.SetupRequest{Phrase: words(11)}), ErrInvalidPhrase)
	assert.ErrorIs(t, v.Validate(ctx, models.SetupRequest{}, FieldPhrase), ErrEmptyPhrase)
}

func TestValidate_ClearPINRequest(t *testing.T) {
	v := NewWalletRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.ClearPINRequest{Phrase: words(12)}))
	assert.ErrorIs(t, v.Validate(ctx, models.ClearPINRequest{Phrase: "  "}), ErrEmptyPhrase)
}

// ---------------------------------------------------------------------------
// Wallet selection
// ---------------------------------------------------------------------------

func TestValidate_WalletModeRequest(t *testing.T) {
	v := NewWalletRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.WalletModeRequest{Mode: models.SyncModeP2POnly}))
	assert.ErrorIs(t, v.Validate(ctx, models.WalletModeRequest{Mode: "turbo"}), ErrInvalidSyncMode)
}

func TestValidate_EnabledWalletsRequest(t *testing.T) {
	v := NewWalletRequestValidator()
	ctx := context.Background()

	ok := models.EnabledWalletsRequest{CurrencyIDs: []string{"bitcoin-testnet:__native__", "ethereum-testnet:0xdac1"}}
	assert.NoError(t, v.Validate(ctx, ok))

	assert.ErrorIs(t, v.Validate(ctx, models.EnabledWalletsRequest{}), ErrEmptyCurrencyIDs)
	assert.ErrorIs(t, v.Validate(ctx, models.EnabledWalletsRequest{CurrencyIDs: []string{"btc"}}), ErrInvalidCurrencyID)
	assert.ErrorIs(t, v.Validate(ctx, models.EnabledWalletsRequest{CurrencyIDs: []string{":__native__"}}), ErrInvalidCurrencyID)
}
