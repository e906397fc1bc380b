package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/stream"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// repositoryWalletSelection is the [WalletSelectionProvider] of the daemon.
// The repository is the source of truth; cells only fan the current value
// out to subscribers.
type repositoryWalletSelection struct {
	repo     store.WalletSelectionRepository
	defaults []string
	logger   *logger.Logger

	mu      sync.Mutex
	loaded  bool
	enabled *stream.Cell[[]string]
	modes   *stream.Cell[map[string]models.SyncMode]
}

// NewWalletSelectionProvider returns a provider backed by repo. When no
// wallet was ever enabled, defaults are enabled and persisted on first use.
func NewWalletSelectionProvider(repo store.WalletSelectionRepository, defaults []string, log *logger.Logger) WalletSelectionProvider {
	return &repositoryWalletSelection{
		repo:     repo,
		defaults: slices.Clone(defaults),
		logger:   log,
		enabled:  stream.NewCell[[]string](nil),
		modes:    stream.NewCell(map[string]models.SyncMode{}),
	}
}

// load reads the selection once. A failed load is retried on next use.
func (p *repositoryWalletSelection) load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return nil
	}

	enabled, err := p.repo.EnabledWallets(ctx)
	if err != nil {
		return fmt.Errorf("load enabled wallets: %w", err)
	}
	if len(enabled) == 0 && len(p.defaults) > 0 {
		if err = p.repo.SetEnabledWallets(ctx, p.defaults); err != nil {
			return fmt.Errorf("seed default wallets: %w", err)
		}
		p.logger.Info().
			Str("func", "repositoryWalletSelection.load").
			Strs("currency_ids", p.defaults).
			Msg("enabled default wallets")
		enabled = slices.Clone(p.defaults)
	}

	modes, err := p.repo.WalletModes(ctx)
	if err != nil {
		return fmt.Errorf("load wallet modes: %w", err)
	}

	p.enabled.Set(enabled)
	p.modes.Set(modes)
	p.loaded = true
	return nil
}

func (p *repositoryWalletSelection) EnabledWallets(ctx context.Context) <-chan []string {
	if err := p.load(ctx); err != nil {
		p.logger.Error().Err(err).Str("func", "repositoryWalletSelection.EnabledWallets").Msg("wallet selection unavailable")
	}
	return p.enabled.Subscribe(ctx)
}

func (p *repositoryWalletSelection) WalletModes(ctx context.Context) <-chan map[string]models.SyncMode {
	if err := p.load(ctx); err != nil {
		p.logger.Error().Err(err).Str("func", "repositoryWalletSelection.WalletModes").Msg("wallet selection unavailable")
	}
	return p.modes.Subscribe(ctx)
}

func (p *repositoryWalletSelection) SetEnabledWallets(ctx context.Context, currencyIDs []string) error {
	if err := p.load(ctx); err != nil {
		return err
	}
	if err := p.repo.SetEnabledWallets(ctx, currencyIDs); err != nil {
		return err
	}
	p.enabled.Set(slices.Clone(currencyIDs))
	return nil
}

func (p *repositoryWalletSelection) SetWalletMode(ctx context.Context, currencyID string, mode models.SyncMode) error {
	if !mode.Valid() {
		return store.ErrInvalidSyncMode
	}
	if err := p.load(ctx); err != nil {
		return err
	}
	if err := p.repo.SetWalletMode(ctx, currencyID, mode); err != nil {
		return err
	}
	p.modes.Update(func(cur map[string]models.SyncMode) map[string]models.SyncMode {
		next := maps.Clone(cur)
		if next == nil {
			next = make(map[string]models.SyncMode)
		}
		next[currencyID] = mode
		return next
	})
	return nil
}
