package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/chain/hd"
	"github.com/MKhiriev/go-wallet-keeper/internal/clock"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

// ClientServices groups the services of the daemon.
type ClientServices struct {
	Vault        *CredentialVault
	Auth         *AuthStateMachine
	AuthGate     *AuthGate
	Selection    WalletSelectionProvider
	Orchestrator *SyncOrchestrator
}

// NewClientServices wires the services on top of the storages and the chain
// engine. defaultWallets are enabled when the user never chose any.
func NewClientServices(
	ctx context.Context,
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	engine chain.Engine,
	keychain crypto.KeyChainService,
	tc clock.TimeSource,
	defaultWallets []string,
	m *metrics.Metrics,
	log *logger.Logger,
) (*ClientServices, error) {
	selector, err := SelectorByName(cfg.Engine.CandidateSelection)
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	gate := NewAuthGate(storages.LegacyStore)

	vault := NewCredentialVault(
		storages.SecureStore,
		storages.LegacyStore,
		hd.NewAccountFactory(),
		hd.NewKeyFactory(),
		keychain,
		VaultOptions{
			DeviceID:      cfg.App.DeviceID,
			Mainnet:       cfg.App.Mainnet,
			Authenticator: gate,
			Metadata:      NewLegacyMetadataProvider(storages.LegacyStore),
			Clock:         tc,
		},
		log,
	)

	if err = vault.CheckAccountInvalidated(ctx); err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}

	auth := NewAuthStateMachine(ctx, vault, DefaultLockoutPolicy(), tc, cfg.Workers.LockoutTick, m, log)
	selection := NewWalletSelectionProvider(storages.WalletSelection, defaultWallets, log)

	orchestrator := NewSyncOrchestrator(
		engine,
		selection,
		NewNetworkInitializer(vault, selector, m, log),
		OrchestratorOptions{
			StorageDir:         cfg.Storage.EngineDir,
			Mainnet:            cfg.App.Mainnet,
			FastThrottle:       cfg.Workers.FastThrottle,
			CoalescingThrottle: cfg.Workers.CoalescingThrottle,
		},
		m,
		log,
	)

	return &ClientServices{
		Vault:        vault,
		Auth:         auth,
		AuthGate:     gate,
		Selection:    selection,
		Orchestrator: orchestrator,
	}, nil
}
