package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPIN targets a PIN that is about to be configured.
	FieldPIN = "pin"

	// FieldPINCandidate targets a PIN entered for verification. Legacy
	// lengths are accepted.
	FieldPINCandidate = "pin_candidate"

	// FieldPhrase targets a recovery phrase supplied by the user.
	FieldPhrase = "phrase"

	// FieldOptionalPhrase accepts an empty phrase (generate a new one).
	FieldOptionalPhrase = "optional_phrase"

	// FieldMode targets a wallet sync mode.
	FieldMode = "mode"

	// FieldCurrencyIDs targets the list of enabled currency ids.
	FieldCurrencyIDs = "currency_ids"
)

// phraseWordCounts are the mnemonic lengths the wallet accepts.
var phraseWordCounts = []int{12, 24}

type WalletRequestValidator struct{}

func NewWalletRequestValidator() Validator {
	return &WalletRequestValidator{}
}

func (v *WalletRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PINRequest:
		return v.validatePINRequest(value, fields...)
	case *models.PINRequest:
		return v.validatePINRequest(*value, fields...)

	case models.SetupRequest:
		return v.validateSetupRequest(value, fields...)
	case *models.SetupRequest:
		return v.validateSetupRequest(*value, fields...)

	case models.ClearPINRequest:
		return v.validatePhrase(value.Phrase)
	case *models.ClearPINRequest:
		return v.validatePhrase(value.Phrase)

	case models.WalletModeRequest:
		return v.validateMode(value.Mode)
	case *models.WalletModeRequest:
		return v.validateMode(value.Mode)

	case models.EnabledWalletsRequest:
		return v.validateEnabledWallets(value)
	case *models.EnabledWalletsRequest:
		return v.validateEnabledWallets(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *WalletRequestValidator) validatePINRequest(req models.PINRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPIN}
	}

	for _, f := range fields {
		switch f {
		case FieldPIN:
			if !isDigits(req.PIN, models.PINLength) {
				return ErrInvalidPIN
			}
		case FieldPINCandidate:
			if !isDigits(req.PIN, models.PINLength) && !isDigits(req.PIN, models.LegacyPINLength) {
				return ErrInvalidPIN
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletRequestValidator) validateSetupRequest(req models.SetupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOptionalPhrase}
	}

	for _, f := range fields {
		switch f {
		case FieldOptionalPhrase:
			if strings.TrimSpace(req.Phrase) == "" {
				continue
			}
			if err := v.validatePhrase(req.Phrase); err != nil {
				return err
			}
		case FieldPhrase:
			if err := v.validatePhrase(req.Phrase); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WalletRequestValidator) validatePhrase(phrase string) error {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return ErrEmptyPhrase
	}
	for _, n := range phraseWordCounts {
		if len(words) == n {
			return nil
		}
	}
	return ErrInvalidPhrase
}

func (v *WalletRequestValidator) validateMode(mode models.SyncMode) error {
	if !mode.Valid() {
		return ErrInvalidSyncMode
	}
	return nil
}

func (v *WalletRequestValidator) validateEnabledWallets(req models.EnabledWalletsRequest) error {
	if len(req.CurrencyIDs) == 0 {
		return ErrEmptyCurrencyIDs
	}
	for _, id := range req.CurrencyIDs {
		network, address, ok := strings.Cut(id, ":")
		if !ok || network == "" || address == "" {
			return ErrInvalidCurrencyID
		}
	}
	return nil
}

func isDigits(s string, length int) bool {
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
