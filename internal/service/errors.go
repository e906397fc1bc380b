package service

import "errors"

// Setup failures. Every one of them is returned after the vault was wiped.
var (
	ErrFailedToGeneratePhrase    = errors.New("failed to generate phrase")
	ErrFailedToPersistPhrase     = errors.New("failed to persist phrase")
	ErrFailedToCreateAccount     = errors.New("failed to create account")
	ErrFailedToCreateAPIKey      = errors.New("failed to create api key")
	ErrFailedToCreateValidWallet = errors.New("failed to create valid wallet")
	ErrMigrationFailed           = errors.New("legacy data migration failed")
)

var (
	ErrPhraseAlreadyExists = errors.New("phrase already exists")
	ErrPhraseNotFound      = errors.New("phrase not found")
	ErrPhraseMismatch      = errors.New("phrase does not match")
	ErrInvalidPhrase       = errors.New("invalid recovery phrase")
	ErrAuthRequired        = errors.New("authentication required")
	ErrAuthDenied          = errors.New("authentication denied")
	ErrNoPendingPrompt     = errors.New("no authentication prompt pending")
	ErrInvalidPIN          = errors.New("invalid pin code")
	ErrNoAccount           = errors.New("no account")
	ErrInvalidAccount      = errors.New("account serialization is not usable")
	ErrNoValidJWT          = errors.New("no valid jwt")
)

var (
	// ErrPreconditionViolation is the panic value of SyncOrchestrator misuse.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrStorageUnavailable is returned when the engine storage directory
	// cannot be created.
	ErrStorageUnavailable = errors.New("engine storage unavailable")

	ErrSessionClosed = errors.New("sync session is closed")
	ErrUnknownWallet = errors.New("unknown wallet")
)
