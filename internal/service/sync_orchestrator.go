// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// OrchestratorOptions configures a SyncOrchestrator.
type OrchestratorOptions struct {
	// StorageDir is the parent of the per-account engine directories.
	StorageDir string
	Mainnet    bool

	FastThrottle       time.Duration
	CoalescingThrottle time.Duration
}

// openSession is everything that lives exactly as long as one Open.
type openSession struct {
	tasks      *sessionTasks
	forwarders *errgroup.Group
	networks   *NetworkManager
	aggregator *EventAggregator
}

// SyncOrchestrator opens and closes the chain engine session. The engine
// session is created on the first Open and reused by later ones until a
// wipe; the aggregator and network manager are rebuilt on every Open.
type SyncOrchestrator struct {
	engine      chain.Engine
	selection   WalletSelectionProvider
	initializer *NetworkInitializer
	opts        OrchestratorOptions
	metrics     *metrics.Metrics
	logger      *logger.Logger

	proxy *listenerProxy

	mu      sync.Mutex
	session chain.Session
	open    *openSession
}

func NewSyncOrchestrator(
	engine chain.Engine,
	selection WalletSelectionProvider,
	initializer *NetworkInitializer,
	opts OrchestratorOptions,
	m *metrics.Metrics,
	log *logger.Logger,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		engine:      engine,
		selection:   selection,
		initializer: initializer,
		opts:        opts,
		metrics:     m,
		logger:      log,
		proxy:       &listenerProxy{},
	}
}

// Open starts syncing for account. Opening an open orchestrator or passing
// an account without a serialization panics with ErrPreconditionViolation.
// ErrStorageUnavailable is returned when the engine directory cannot be
// created.
//
// Only values of ctx are used; the session outlives the call.
func (o *SyncOrchestrator) Open(ctx context.Context, account chain.Account) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.open != nil {
		panic(fmt.Errorf("%w: sync session already open", ErrPreconditionViolation))
	}
	if account == nil || len(account.Serialize()) == 0 {
		panic(fmt.Errorf("%w: account serialization is empty", ErrPreconditionViolation))
	}

	log := o.logger.With().Str("func", "SyncOrchestrator.Open").Logger()

	dir := filepath.Join(o.opts.StorageDir, account.FilesystemIdentifier())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	sessionCtx := context.WithoutCancel(ctx)

	reused := o.session != nil
	if !reused {
		session, err := o.engine.CreateSession(sessionCtx, account, o.opts.Mainnet, dir, o.proxy)
		if err != nil {
			return fmt.Errorf("create engine session: %w", err)
		}
		o.session = session
	}

	tasks := newSessionTasks(sessionCtx, o.metrics, o.logger)
	networks := newNetworkManager(o.session, o.initializer, tasks, o.logger)
	aggregator := newEventAggregator(networks, tasks, o.opts.FastThrottle, o.opts.CoalescingThrottle, o.metrics, o.logger)

	o.proxy.set(aggregator)
	if reused {
		aggregator.seed(o.session)
	}

	forwarders, gctx := errgroup.WithContext(tasks.Context())
	forwarders.Go(func() error {
		for ids := range o.selection.EnabledWallets(gctx) {
			networks.SetEnabledWallets(ids)
			aggregator.SetTracked(ids)
		}
		return nil
	})
	forwarders.Go(func() error {
		for modes := range o.selection.WalletModes(gctx) {
			networks.SetManagerModes(modes)
		}
		return nil
	})

	o.session.Resume()

	o.open = &openSession{
		tasks:      tasks,
		forwarders: forwarders,
		networks:   networks,
		aggregator: aggregator,
	}
	o.metrics.SetSessionOpen(true)
	log.Info().Bool("reused", reused).Str("dir", dir).Msg("sync session opened")
	return nil
}

// Close stops the session. With wipe the engine state on disk is deleted
// and the next Open starts a new engine session. Closing a closed
// orchestrator panics with ErrPreconditionViolation.
func (o *SyncOrchestrator) Close(wipe bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.open == nil {
		panic(fmt.Errorf("%w: sync session is not open", ErrPreconditionViolation))
	}
	return o.closeLocked(wipe)
}

// CloseIfOpen closes an open session and reports whether there was one.
func (o *SyncOrchestrator) CloseIfOpen() (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.open == nil {
		return false, nil
	}
	return true, o.closeLocked(false)
}

// Wipe deletes the engine state whether or not a session is open.
func (o *SyncOrchestrator) Wipe() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.open != nil {
		return o.closeLocked(true)
	}
	if o.session != nil {
		err := o.session.Wipe()
		o.session = nil
		return err
	}
	if o.opts.StorageDir == "" {
		return nil
	}
	return os.RemoveAll(o.opts.StorageDir)
}

// closeLocked must be called with mu held and a session open.
func (o *SyncOrchestrator) closeLocked(wipe bool) error {
	s := o.open
	o.open = nil

	s.tasks.Stop()
	_ = s.forwarders.Wait()
	o.proxy.set(nil)
	o.session.Pause()
	o.metrics.SetSessionOpen(false)

	log := o.logger.With().Str("func", "SyncOrchestrator.Close").Logger()

	if !wipe {
		log.Info().Msg("sync session closed")
		return nil
	}

	err := o.session.Wipe()
	o.session = nil
	if err != nil {
		return fmt.Errorf("wipe engine session: %w", err)
	}
	log.Info().Msg("sync session closed and wiped")
	return nil
}

func (o *SyncOrchestrator) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open != nil
}

// Aggregator returns the aggregator of the open session.
func (o *SyncOrchestrator) Aggregator() (*EventAggregator, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.open == nil {
		return nil, false
	}
	return o.open.aggregator, true
}

// WalletViews is the read side of an open sync session.
type WalletViews interface {
	WalletsSnapshot(opts ...ViewOption) []models.WalletView
	WalletSnapshot(id string) (models.WalletView, bool)
	TransfersSnapshot(id string) ([]models.TransferView, bool)
	WalletStateSnapshot(id string) (models.WalletState, bool)
}

// Views returns the read side of the open session's aggregator.
func (o *SyncOrchestrator) Views() (WalletViews, bool) {
	agg, ok := o.Aggregator()
	if !ok {
		return nil, false
	}
	return agg, true
}

// InitializeWallet retries activation of a currency's network allowing
// account creation. It returns ErrSessionClosed while no session is open.
func (o *SyncOrchestrator) InitializeWallet(ctx context.Context, currencyID string) (models.NetworkState, error) {
	o.mu.Lock()
	s := o.open
	o.mu.Unlock()

	if s == nil {
		return models.NetworkState{}, ErrSessionClosed
	}
	return s.networks.InitializeWallet(ctx, currencyID)
}

// listenerProxy is the listener the engine session keeps for its whole
// life. It forwards to the aggregator of the current Open and drops events
// between sessions.
type listenerProxy struct {
	target atomic.Pointer[EventAggregator]
}

var _ chain.Listener = (*listenerProxy)(nil)

func (p *listenerProxy) set(a *EventAggregator) {
	p.target.Store(a)
}

func (p *listenerProxy) HandleSystemEvent(s chain.Session, e chain.SystemEvent) {
	if a := p.target.Load(); a != nil {
		a.HandleSystemEvent(s, e)
	}
}

func (p *listenerProxy) HandleNetworkEvent(s chain.Session, n chain.Network, e chain.NetworkEvent) {
	if a := p.target.Load(); a != nil {
		a.HandleNetworkEvent(s, n, e)
	}
}

func (p *listenerProxy) HandleManagerEvent(s chain.Session, m chain.WalletManager, e chain.ManagerEvent) {
	if a := p.target.Load(); a != nil {
		a.HandleManagerEvent(s, m, e)
	}
}

func (p *listenerProxy) HandleWalletEvent(s chain.Session, m chain.WalletManager, w chain.Wallet, e chain.WalletEvent) {
	if a := p.target.Load(); a != nil {
		a.HandleWalletEvent(s, m, w, e)
	}
}

func (p *listenerProxy) HandleTransferEvent(s chain.Session, m chain.WalletManager, w chain.Wallet, t chain.Transfer, e chain.TransferEvent) {
	if a := p.target.Load(); a != nil {
		a.HandleTransferEvent(s, m, w, t, e)
	}
}
