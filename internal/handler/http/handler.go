package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const defaultRequestTimeout = 30 * time.Second

// UserAuth is the user-facing part of the authentication state machine.
type UserAuth interface {
	State(ctx context.Context) models.UserState
	StateChanges(ctx context.Context, disabledUpdates bool) <-chan models.UserState
	Setup(ctx context.Context, phrase []byte) (models.Credential, error)
	IsMigrationRequired(ctx context.Context) bool
	Migrate(ctx context.Context) (bool, error)
	ConfigurePIN(ctx context.Context, pin string) error
	VerifyPIN(ctx context.Context, pin string) (bool, error)
	ClearPIN(ctx context.Context, phrase []byte) error
	Lock()
	Unlock()
	Wipe(ctx context.Context) error
}

// AuthPrompt answers platform authentication prompts raised by the vault.
type AuthPrompt interface {
	Pending() bool
	Resolve(approved bool) error
}

// SyncSession is the wallet side of the daemon.
type SyncSession interface {
	Views() (service.WalletViews, bool)
	InitializeWallet(ctx context.Context, currencyID string) (models.NetworkState, error)
	Wipe() error
}

type Handler struct {
	auth      UserAuth
	prompt    AuthPrompt
	session   SyncSession
	selection service.WalletSelectionProvider
	validator validators.Validator

	metrics   *metrics.Metrics
	buildInfo models.AppBuildInfo

	controlToken   string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.ClientServices,
	cfg config.ClientServer,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		auth:           services.Auth,
		prompt:         services.AuthGate,
		session:        services.Orchestrator,
		selection:      services.Selection,
		validator:      validators.NewWalletRequestValidator(),
		metrics:        m,
		buildInfo:      buildInfo,
		controlToken:   cfg.ControlToken,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

func (h *Handler) timeout() time.Duration {
	if h.requestTimeout <= 0 {
		return defaultRequestTimeout
	}
	return h.requestTimeout
}
