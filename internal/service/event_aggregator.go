// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/stream"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Default trailing-edge throttle windows of the aggregator views.
const (
	FastThrottle       = 500 * time.Millisecond
	CoalescingThrottle = 800 * time.Millisecond
)

// ViewOption tunes a derived view.
type ViewOption func(*viewOptions)

type viewOptions struct {
	window        time.Duration
	filterTracked bool
}

// WithThrottle overrides the throttle window of a view.
func WithThrottle(window time.Duration) ViewOption {
	return func(o *viewOptions) { o.window = window }
}

// FilterTracked limits a wallet list to the enabled currencies.
func FilterTracked() ViewOption {
	return func(o *viewOptions) { o.filterTracked = true }
}

func buildViewOptions(window time.Duration, opts []ViewOption) viewOptions {
	o := viewOptions{window: window}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type walletEntry struct {
	wallet  chain.Wallet
	manager chain.WalletManager
}

// transferLog keeps the transfers of one wallet in arrival order.
type transferLog struct {
	order []string
	byID  map[string]chain.Transfer
	tombs map[string]int
}

func newTransferLog() *transferLog {
	return &transferLog{byID: make(map[string]chain.Transfer), tombs: make(map[string]int)}
}

// EventAggregator turns engine callbacks into live views of wallets,
// transfers and networks. It is the only writer of those views.
//
// Wallets and transfers are updated by structural add/remove. A removal
// that arrives before its add leaves a tombstone which swallows the late
// add, so the result does not depend on how events of different wallets
// interleave.
type EventAggregator struct {
	networks   *NetworkManager
	tasks      *sessionTasks
	metrics    *metrics.Metrics
	logger     *logger.Logger
	fast       time.Duration
	coalescing time.Duration

	walletsSig   *stream.Signal
	transfersSig *stream.Signal
	systemSig    *stream.Signal

	mu            sync.RWMutex
	wallets       map[string]walletEntry
	walletTombs   map[string]int
	transfers     map[string]*transferLog
	managerStates map[string]chain.ManagerState
	networkOrder  []string
	networkByID   map[string]chain.Network
	discovered    bool
	tracked       map[string]struct{}
}

var _ chain.Listener = (*EventAggregator)(nil)

func newEventAggregator(
	networks *NetworkManager,
	tasks *sessionTasks,
	fast, coalescing time.Duration,
	m *metrics.Metrics,
	log *logger.Logger,
) *EventAggregator {
	if fast <= 0 {
		fast = FastThrottle
	}
	if coalescing <= 0 {
		coalescing = CoalescingThrottle
	}

	return &EventAggregator{
		networks:      networks,
		tasks:         tasks,
		metrics:       m,
		logger:        log,
		fast:          fast,
		coalescing:    coalescing,
		walletsSig:    stream.NewSignal(),
		transfersSig:  stream.NewSignal(),
		systemSig:     stream.NewSignal(),
		wallets:       make(map[string]walletEntry),
		walletTombs:   make(map[string]int),
		transfers:     make(map[string]*transferLog),
		managerStates: make(map[string]chain.ManagerState),
		networkByID:   make(map[string]chain.Network),
	}
}

// seed loads the state of a reused session whose earlier events were
// consumed by a previous aggregator.
func (a *EventAggregator) seed(session chain.Session) {
	for _, n := range session.Networks() {
		a.addNetwork(n)
		a.networks.NetworkAdded(n)
	}

	managers := session.Managers()
	states := make(map[string]chain.ManagerState, len(managers))
	wallets := make(map[string]walletEntry)
	for _, manager := range managers {
		states[manager.Network().UIDs] = manager.State()
		for _, w := range manager.Wallets() {
			wallets[w.ID()] = walletEntry{wallet: w, manager: manager}
		}
	}

	a.mu.Lock()
	maps.Copy(a.managerStates, states)
	maps.Copy(a.wallets, wallets)
	a.discovered = len(a.networkOrder) > 0
	a.mu.Unlock()

	a.walletsSig.Notify()
	a.systemSig.Notify()
}

// SetTracked replaces the set of currencies FilterTracked keeps.
func (a *EventAggregator) SetTracked(currencyIDs []string) {
	tracked := make(map[string]struct{}, len(currencyIDs))
	for _, id := range currencyIDs {
		tracked[strings.ToLower(id)] = struct{}{}
	}

	a.mu.Lock()
	a.tracked = tracked
	a.mu.Unlock()
	a.walletsSig.Notify()
}

// ── chain.Listener ──────────────────────────────────────────────────────────

func (a *EventAggregator) HandleSystemEvent(_ chain.Session, event chain.SystemEvent) {
	defer a.recoverHandler("system")

	switch e := event.(type) {
	case chain.SystemCreated, chain.SystemDeleted, chain.SystemManagerAdded:
	case chain.SystemNetworkAdded:
		a.addNetwork(e.Network)
		a.networks.NetworkAdded(e.Network)
		a.systemSig.Notify()
	case chain.SystemDiscoveredNetworks:
		a.mu.Lock()
		a.discovered = true
		a.mu.Unlock()
		a.systemSig.Notify()
	default:
		a.unknown("system", event)
		return
	}
	a.metrics.EngineEvent("system", event.SystemEventName())
}

func (a *EventAggregator) HandleNetworkEvent(_ chain.Session, network chain.Network, event chain.NetworkEvent) {
	defer a.recoverHandler("network")

	switch event.(type) {
	case chain.NetworkCreated, chain.NetworkFeesUpdated:
	case chain.NetworkUpdated:
		a.mu.Lock()
		if _, ok := a.networkByID[network.UIDs]; ok {
			a.networkByID[network.UIDs] = network
		}
		a.mu.Unlock()
		a.systemSig.Notify()
	default:
		a.unknown("network", event)
		return
	}
	a.metrics.EngineEvent("network", event.NetworkEventName())
}

func (a *EventAggregator) HandleManagerEvent(_ chain.Session, manager chain.WalletManager, event chain.ManagerEvent) {
	defer a.recoverHandler("manager")

	switch e := event.(type) {
	case chain.ManagerCreated:
		a.tasks.Go("connect manager", func(context.Context) { a.networks.ConnectManager(manager) })
	case chain.ManagerChanged:
		a.setManagerState(manager, e.New)
		if e.Old.Kind != chain.ManagerConnectedState && e.New.Kind == chain.ManagerConnectedState {
			a.tasks.Go("register currencies", func(context.Context) { a.networks.RegisterCurrencies(manager) })
		}
	case chain.ManagerDeleted:
		networkUIDs := manager.Network().UIDs
		a.mu.Lock()
		delete(a.managerStates, networkUIDs)
		a.mu.Unlock()
		a.walletsSig.Notify()
	case chain.ManagerSyncRecommended:
		a.tasks.Go("sync to depth", func(context.Context) { manager.SyncToDepth(e.Depth) })
	case chain.ManagerWalletAdded:
		a.addWallet(manager, e.Wallet)
	case chain.ManagerWalletChanged:
		a.updateWallet(e.Wallet)
	case chain.ManagerWalletDeleted:
		a.removeWallet(e.Wallet.ID())
	case chain.ManagerSyncStarted, chain.ManagerSyncProgress, chain.ManagerSyncStopped, chain.ManagerBlockUpdated:
	default:
		a.unknown("manager", event)
		return
	}
	a.metrics.EngineEvent("manager", event.ManagerEventName())
}

func (a *EventAggregator) HandleWalletEvent(_ chain.Session, _ chain.WalletManager, wallet chain.Wallet, event chain.WalletEvent) {
	defer a.recoverHandler("wallet")

	switch e := event.(type) {
	case chain.WalletCreated, chain.WalletDeleted:
	case chain.WalletBalanceUpdated:
		a.updateWallet(e.Wallet)
	case chain.WalletTransferAdded:
		a.addTransfer(wallet.ID(), e.Transfer)
	case chain.WalletTransferChanged:
		a.updateTransfer(wallet.ID(), e.Transfer)
	case chain.WalletTransferSubmitted:
		a.updateTransfer(wallet.ID(), e.Transfer)
	case chain.WalletTransferDeleted:
		a.removeTransfer(wallet.ID(), e.Transfer.Hash)
	default:
		a.unknown("wallet", event)
		return
	}
	a.metrics.EngineEvent("wallet", event.WalletEventName())
}

func (a *EventAggregator) HandleTransferEvent(_ chain.Session, _ chain.WalletManager, wallet chain.Wallet, transfer chain.Transfer, event chain.TransferEvent) {
	defer a.recoverHandler("transfer")

	switch e := event.(type) {
	case chain.TransferCreated:
		a.addTransfer(wallet.ID(), transfer)
	case chain.TransferChanged:
		transfer.State = e.New
		a.updateTransfer(wallet.ID(), transfer)
	default:
		a.unknown("transfer", event)
		return
	}
	a.metrics.EngineEvent("transfer", event.TransferEventName())
}

func (a *EventAggregator) unknown(kind string, event any) {
	a.metrics.UnknownEvent(kind)
	a.logger.Warn().
		Str("func", "EventAggregator.Handle").
		Str("kind", kind).
		Type("event", event).
		Msg("ignoring unknown engine event")
}

func (a *EventAggregator) recoverHandler(kind string) {
	if r := recover(); r != nil {
		a.metrics.HandlerPanic()
		a.logger.Error().
			Str("func", "EventAggregator.Handle").
			Str("kind", kind).
			Interface("panic", r).
			Msg("engine event handler panicked")
	}
}

// ── Mutations ───────────────────────────────────────────────────────────────

func (a *EventAggregator) addNetwork(n chain.Network) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.networkByID[n.UIDs]; !ok {
		a.networkOrder = append(a.networkOrder, n.UIDs)
	}
	a.networkByID[n.UIDs] = n
}

func (a *EventAggregator) setManagerState(manager chain.WalletManager, state chain.ManagerState) {
	networkUIDs := manager.Network().UIDs

	a.mu.Lock()
	a.managerStates[networkUIDs] = state
	a.mu.Unlock()
	a.walletsSig.Notify()
}

func (a *EventAggregator) addWallet(manager chain.WalletManager, w chain.Wallet) {
	id := w.ID()
	state := manager.State()

	a.mu.Lock()
	if a.walletTombs[id] > 0 {
		consumeTomb(a.walletTombs, id)
		a.mu.Unlock()
		return
	}
	a.wallets[id] = walletEntry{wallet: w, manager: manager}
	if _, ok := a.managerStates[w.NetworkUID]; !ok {
		a.managerStates[w.NetworkUID] = state
	}
	a.mu.Unlock()

	a.walletsSig.Notify()
}

// updateWallet refreshes a known wallet. Updates for wallets not added yet
// are dropped.
func (a *EventAggregator) updateWallet(w chain.Wallet) {
	id := w.ID()

	a.mu.Lock()
	entry, ok := a.wallets[id]
	if ok {
		entry.wallet = w
		a.wallets[id] = entry
	}
	a.mu.Unlock()

	if ok {
		a.walletsSig.Notify()
	}
}

func (a *EventAggregator) removeWallet(id string) {
	a.mu.Lock()
	if _, ok := a.wallets[id]; ok {
		delete(a.wallets, id)
	} else {
		a.walletTombs[id]++
	}
	a.mu.Unlock()

	a.walletsSig.Notify()
}

func (a *EventAggregator) addTransfer(walletID string, t chain.Transfer) {
	a.mu.Lock()
	log := a.transferLog(walletID)
	if log.tombs[t.Hash] > 0 {
		consumeTomb(log.tombs, t.Hash)
		a.mu.Unlock()
		return
	}
	if _, ok := log.byID[t.Hash]; !ok {
		log.order = append(log.order, t.Hash)
	}
	log.byID[t.Hash] = t
	a.mu.Unlock()

	a.transfersSig.Notify()
}

func (a *EventAggregator) updateTransfer(walletID string, t chain.Transfer) {
	a.mu.Lock()
	log := a.transferLog(walletID)
	_, ok := log.byID[t.Hash]
	if ok {
		log.byID[t.Hash] = t
	}
	a.mu.Unlock()

	if ok {
		a.transfersSig.Notify()
	}
}

func (a *EventAggregator) removeTransfer(walletID, hash string) {
	a.mu.Lock()
	log := a.transferLog(walletID)
	if _, ok := log.byID[hash]; ok {
		delete(log.byID, hash)
		log.order = slices.DeleteFunc(log.order, func(h string) bool { return h == hash })
	} else {
		log.tombs[hash]++
	}
	a.mu.Unlock()

	a.transfersSig.Notify()
}

// transferLog must be called with mu held.
func (a *EventAggregator) transferLog(walletID string) *transferLog {
	log, ok := a.transfers[walletID]
	if !ok {
		log = newTransferLog()
		a.transfers[walletID] = log
	}
	return log
}

func consumeTomb(tombs map[string]int, id string) {
	if tombs[id] <= 1 {
		delete(tombs, id)
		return
	}
	tombs[id]--
}

// ── Snapshots ───────────────────────────────────────────────────────────────

// WalletsSnapshot returns the current wallets sorted by id.
func (a *EventAggregator) WalletsSnapshot(opts ...ViewOption) []models.WalletView {
	o := buildViewOptions(0, opts)

	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.WalletView, 0, len(a.wallets))
	for id, entry := range a.wallets {
		if o.filterTracked && a.tracked != nil {
			if _, ok := a.tracked[strings.ToLower(id)]; !ok {
				continue
			}
		}
		out = append(out, a.viewLocked(entry))
	}
	slices.SortFunc(out, func(x, y models.WalletView) int { return cmp.Compare(x.ID, y.ID) })
	return out
}

// WalletSnapshot looks a wallet up by currency uids, or by currency code
// when no uids match.
func (a *EventAggregator) WalletSnapshot(id string) (models.WalletView, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	entry, ok := a.resolveLocked(id)
	if !ok {
		return models.WalletView{}, false
	}
	return a.viewLocked(entry), true
}

// TransfersSnapshot returns the transfers of a wallet in arrival order.
func (a *EventAggregator) TransfersSnapshot(id string) ([]models.TransferView, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	entry, ok := a.resolveLocked(id)
	if !ok {
		return nil, false
	}
	walletID := entry.wallet.ID()

	log, ok := a.transfers[walletID]
	if !ok {
		return []models.TransferView{}, true
	}
	out := make([]models.TransferView, 0, len(log.order))
	for _, hash := range log.order {
		out = append(out, transferView(walletID, log.byID[hash]))
	}
	return out, true
}

// WalletStateSnapshot maps the wallet's network state to a wallet state.
// Currencies of a known network are reported even before the wallet
// itself exists.
func (a *EventAggregator) WalletStateSnapshot(id string) (models.WalletState, bool) {
	networkUIDs, ok := a.networkOfWallet(id)
	if !ok {
		return models.WalletState{}, false
	}
	return models.WalletStateFrom(a.networks.State(networkUIDs)), true
}

// NetworksSnapshot returns the announced networks in announcement order.
func (a *EventAggregator) NetworksSnapshot() []chain.Network {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]chain.Network, 0, len(a.networkOrder))
	for _, id := range a.networkOrder {
		out = append(out, a.networkByID[id])
	}
	return out
}

// Discovered reports whether the engine finished announcing networks.
func (a *EventAggregator) Discovered() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.discovered
}

func (a *EventAggregator) resolveLocked(id string) (walletEntry, bool) {
	if entry, ok := a.wallets[id]; ok {
		return entry, true
	}
	for uids, entry := range a.wallets {
		if strings.EqualFold(uids, id) || strings.EqualFold(entry.wallet.Currency.Code, id) {
			return entry, true
		}
	}
	return walletEntry{}, false
}

func (a *EventAggregator) networkOfWallet(id string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if entry, ok := a.resolveLocked(id); ok {
		return entry.wallet.NetworkUID, true
	}
	for _, n := range a.networkByID {
		if n.HasCurrency(id) {
			return n.UIDs, true
		}
	}
	return "", false
}

func (a *EventAggregator) viewLocked(entry walletEntry) models.WalletView {
	w := entry.wallet
	mode := models.DefaultSyncMode
	if entry.manager != nil {
		mode = entry.manager.Mode()
	}
	return models.WalletView{
		ID:           w.ID(),
		CurrencyCode: w.Currency.Code,
		NetworkID:    w.NetworkUID,
		Balance:      w.Balance.String(),
		Mode:         mode,
		Connected:    a.managerStates[w.NetworkUID].Kind == chain.ManagerConnectedState,
	}
}

func transferView(walletID string, t chain.Transfer) models.TransferView {
	return models.TransferView{
		Hash:          t.Hash,
		WalletID:      walletID,
		Amount:        t.Amount.String(),
		Fee:           t.Fee.String(),
		Direction:     t.Direction,
		State:         string(t.State),
		Confirmations: t.Confirmations,
	}
}

// ── Derived views ───────────────────────────────────────────────────────────

// Wallets streams the wallet list. The first value is the current list.
func (a *EventAggregator) Wallets(ctx context.Context, opts ...ViewOption) <-chan []models.WalletView {
	o := buildViewOptions(a.coalescing, opts)
	trigger := stream.Merge(ctx, a.walletsSig.Subscribe(ctx), a.systemSig.Subscribe(ctx))

	return stream.Derive(ctx, trigger, o.window, func() []models.WalletView {
		return a.WalletsSnapshot(opts...)
	}, slices.Equal[[]models.WalletView])
}

// Wallet streams one wallet once it exists.
func (a *EventAggregator) Wallet(ctx context.Context, id string, opts ...ViewOption) <-chan models.WalletView {
	o := buildViewOptions(a.fast, opts)

	type lookup struct {
		view models.WalletView
		ok   bool
	}
	views := stream.Derive(ctx, a.walletsSig.Subscribe(ctx), o.window, func() lookup {
		v, ok := a.WalletSnapshot(id)
		return lookup{view: v, ok: ok}
	}, func(x, y lookup) bool { return x == y })

	found := stream.Filter(ctx, views, func(l lookup) bool { return l.ok })
	return stream.Map(ctx, found, func(l lookup) models.WalletView { return l.view })
}

// WalletTransfers streams the transfers of a wallet in arrival order.
func (a *EventAggregator) WalletTransfers(ctx context.Context, id string, opts ...ViewOption) <-chan []models.TransferView {
	o := buildViewOptions(a.coalescing, opts)
	trigger := stream.Merge(ctx, a.transfersSig.Subscribe(ctx), a.walletsSig.Subscribe(ctx))

	return stream.Derive(ctx, trigger, o.window, func() []models.TransferView {
		views, _ := a.TransfersSnapshot(id)
		return views
	}, slices.Equal[[]models.TransferView])
}

// WalletTransfer streams one transfer once it exists.
func (a *EventAggregator) WalletTransfer(ctx context.Context, id, hash string, opts ...ViewOption) <-chan models.TransferView {
	o := buildViewOptions(a.fast, opts)

	type lookup struct {
		view models.TransferView
		ok   bool
	}
	views := stream.Derive(ctx, a.transfersSig.Subscribe(ctx), o.window, func() lookup {
		transfers, _ := a.TransfersSnapshot(id)
		for _, t := range transfers {
			if t.Hash == hash {
				return lookup{view: t, ok: true}
			}
		}
		return lookup{}
	}, func(x, y lookup) bool { return x == y })

	found := stream.Filter(ctx, views, func(l lookup) bool { return l.ok })
	return stream.Map(ctx, found, func(l lookup) models.TransferView { return l.view })
}

// WalletState streams the initialization state of a wallet's network.
func (a *EventAggregator) WalletState(ctx context.Context, id string, opts ...ViewOption) <-chan models.WalletState {
	o := buildViewOptions(a.fast, opts)

	type lookup struct {
		state models.WalletState
		ok    bool
	}
	trigger := stream.Merge(ctx,
		stream.Map(ctx, a.networks.States(ctx), func(map[string]models.NetworkState) uint64 { return 0 }),
		a.systemSig.Subscribe(ctx),
	)
	states := stream.Derive(ctx, trigger, o.window, func() lookup {
		s, ok := a.WalletStateSnapshot(id)
		return lookup{state: s, ok: ok}
	}, func(x, y lookup) bool { return x == y })

	found := stream.Filter(ctx, states, func(l lookup) bool { return l.ok })
	return stream.Map(ctx, found, func(l lookup) models.WalletState { return l.state })
}

// Networks streams the announced networks. With whenDiscoveryComplete
// nothing is emitted until discovery finished.
func (a *EventAggregator) Networks(ctx context.Context, whenDiscoveryComplete bool) <-chan []chain.Network {
	type lookup struct {
		networks []chain.Network
		ready    bool
	}
	views := stream.Derive(ctx, a.systemSig.Subscribe(ctx), a.fast, func() lookup {
		return lookup{networks: a.NetworksSnapshot(), ready: !whenDiscoveryComplete || a.Discovered()}
	}, func(x, y lookup) bool {
		return x.ready == y.ready && slices.EqualFunc(x.networks, y.networks, func(n, m chain.Network) bool {
			return n.UIDs == m.UIDs && n.Height == m.Height
		})
	})

	ready := stream.Filter(ctx, views, func(l lookup) bool { return l.ready })
	return stream.Map(ctx, ready, func(l lookup) []chain.Network { return l.networks })
}

// SystemEvents wakes subscribers after a network was added or discovery
// completed.
func (a *EventAggregator) SystemEvents(ctx context.Context) <-chan uint64 {
	return a.systemSig.Subscribe(ctx)
}
