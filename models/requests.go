package models

// PINLength is the number of digits of a wallet PIN.
const PINLength = 6

// LegacyPINLength is the PIN length of earlier releases. Such PINs still
// verify but have to be upgraded.
const LegacyPINLength = 4

// SetupRequest creates the wallet account. An empty Phrase generates a new
// recovery phrase, a non-empty one restores the wallet from it.
type SetupRequest struct {
	Phrase string `json:"phrase,omitempty"`
}

// SetupResponse is returned once the account was created. The phrase is
// only echoed back when it was generated.
type SetupResponse struct {
	Phrase       string `json:"phrase,omitempty"`
	CreationTime int64  `json:"creation_time"`
}

// PINRequest carries a PIN to configure or verify.
type PINRequest struct {
	PIN string `json:"pin"`
}

// PINVerification is the result of a PIN verification.
type PINVerification struct {
	Verified bool      `json:"verified"`
	State    UserState `json:"state"`
}

// ClearPINRequest proves possession of the recovery phrase before the PIN
// is removed.
type ClearPINRequest struct {
	Phrase string `json:"phrase"`
}

// AuthDecision answers a pending authentication prompt.
type AuthDecision struct {
	Approved bool `json:"approved"`
}

// MigrationResponse reports whether legacy data was migrated.
type MigrationResponse struct {
	Migrated bool `json:"migrated"`
}

// MigrationStatusResponse reports whether legacy data waits for migration.
type MigrationStatusResponse struct {
	Required bool `json:"required"`
}

// EnabledWalletsRequest replaces the set of enabled wallets.
type EnabledWalletsRequest struct {
	CurrencyIDs []string `json:"currency_ids"`
}

// WalletModeRequest changes the sync mode of one wallet.
type WalletModeRequest struct {
	Mode SyncMode `json:"mode"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
