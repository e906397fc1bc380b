package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPIN        = errors.New("pin must be 6 digits")
	ErrEmptyPhrase       = errors.New("phrase is required")
	ErrInvalidPhrase     = errors.New("phrase must contain 12 or 24 words")
	ErrInvalidSyncMode   = errors.New("invalid sync mode")
	ErrEmptyCurrencyIDs  = errors.New("currency ids list cannot be empty")
	ErrInvalidCurrencyID = errors.New("invalid currency id")
)
