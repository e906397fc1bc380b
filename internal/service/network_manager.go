package service

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/stream"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// NetworkManager keeps the activation state of every network of a session
// and applies the wallet selection to its wallet managers. One instance
// lives as long as one open session.
type NetworkManager struct {
	session     chain.Session
	initializer *NetworkInitializer
	tasks       *sessionTasks
	logger      *logger.Logger

	states *stream.Cell[map[string]models.NetworkState]

	mu       sync.Mutex
	enabled  map[string]struct{}
	modes    map[string]models.SyncMode
	inFlight map[string]bool
}

func newNetworkManager(session chain.Session, initializer *NetworkInitializer, tasks *sessionTasks, log *logger.Logger) *NetworkManager {
	return &NetworkManager{
		session:     session,
		initializer: initializer,
		tasks:       tasks,
		logger:      log,
		states:      stream.NewCell(map[string]models.NetworkState{}),
		enabled:     make(map[string]struct{}),
		modes:       make(map[string]models.SyncMode),
		inFlight:    make(map[string]bool),
	}
}

// State returns the activation state of a network. Networks not seen yet
// are Loading.
func (m *NetworkManager) State(networkUIDs string) models.NetworkState {
	if s, ok := m.states.Get()[networkUIDs]; ok {
		return s
	}
	return models.NetworkLoading()
}

// States streams every change of the network states.
func (m *NetworkManager) States(ctx context.Context) <-chan map[string]models.NetworkState {
	return m.states.Subscribe(ctx)
}

func (m *NetworkManager) setState(networkUIDs string, state models.NetworkState) {
	m.states.Update(func(cur map[string]models.NetworkState) map[string]models.NetworkState {
		next := maps.Clone(cur)
		next[networkUIDs] = state
		return next
	})
}

// NetworkAdded starts activation of a newly announced network in the
// background. A network already initialized or being initialized is
// skipped.
func (m *NetworkManager) NetworkAdded(network chain.Network) {
	if !m.begin(network.UIDs) {
		return
	}
	if _, ok := m.states.Get()[network.UIDs]; !ok {
		m.setState(network.UIDs, models.NetworkLoading())
	}

	m.tasks.Go("initialize network "+network.UIDs, func(ctx context.Context) {
		defer m.end(network.UIDs)
		m.initialize(ctx, network, false)
	})
}

// InitializeWallet retries activation of the network a currency lives on,
// this time allowing the engine to create the account. Other networks are
// not touched.
func (m *NetworkManager) InitializeWallet(ctx context.Context, currencyID string) (models.NetworkState, error) {
	network, ok := m.networkOf(currencyID)
	if !ok {
		return models.NetworkState{}, fmt.Errorf("%w: %s", ErrUnknownWallet, currencyID)
	}
	if m.State(network.UIDs).Kind == models.NetworkStateInitialized {
		return models.NetworkInitialized(), nil
	}
	if !m.begin(network.UIDs) {
		return m.State(network.UIDs), nil
	}
	defer m.end(network.UIDs)

	m.setState(network.UIDs, models.NetworkLoading())
	return m.initialize(ctx, network, true), nil
}

func (m *NetworkManager) begin(networkUIDs string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inFlight[networkUIDs] || m.State(networkUIDs).Kind == models.NetworkStateInitialized {
		return false
	}
	m.inFlight[networkUIDs] = true
	return true
}

func (m *NetworkManager) end(networkUIDs string) {
	m.mu.Lock()
	delete(m.inFlight, networkUIDs)
	m.mu.Unlock()
}

func (m *NetworkManager) initialize(ctx context.Context, network chain.Network, create bool) models.NetworkState {
	state := m.initializer.Initialize(ctx, m.session, network, create)
	if ctx.Err() != nil {
		return state
	}

	m.setState(network.UIDs, state)
	if state.Kind == models.NetworkStateInitialized {
		m.createManager(network)
	}
	return state
}

// createManager starts the wallet manager of an initialized network when
// at least one of its currencies is enabled.
func (m *NetworkManager) createManager(network chain.Network) {
	if _, exists := m.session.Manager(network.UIDs); exists {
		return
	}

	currencies := m.enabledCurrencies(network)
	if len(currencies) == 0 {
		return
	}

	if err := m.session.CreateWalletManager(network, m.modeFor(network), currencies); err != nil {
		m.logger.Error().Err(err).
			Str("func", "NetworkManager.createManager").
			Str("network", network.UIDs).
			Msg("failed to create wallet manager")
	}
}

// ConnectManager applies the desired sync mode and connects.
func (m *NetworkManager) ConnectManager(manager chain.WalletManager) {
	manager.SetMode(m.modeFor(manager.Network()))
	manager.Connect()
}

// RegisterCurrencies creates the wallets of every enabled currency the
// manager's network carries.
func (m *NetworkManager) RegisterCurrencies(manager chain.WalletManager) {
	network := manager.Network()
	for _, c := range m.enabledCurrencies(network) {
		if _, err := manager.RegisterWalletFor(c); err != nil {
			m.logger.Error().Err(err).
				Str("func", "NetworkManager.RegisterCurrencies").
				Str("currency", c.UIDs).
				Msg("failed to register wallet")
		}
	}
}

// SetEnabledWallets replaces the enabled currency set and brings the
// session in line: missing managers are created and missing wallets
// registered on connected ones.
func (m *NetworkManager) SetEnabledWallets(currencyIDs []string) {
	enabled := make(map[string]struct{}, len(currencyIDs))
	for _, id := range currencyIDs {
		enabled[strings.ToLower(id)] = struct{}{}
	}

	m.mu.Lock()
	m.enabled = enabled
	m.mu.Unlock()

	for _, network := range m.session.Networks() {
		if m.State(network.UIDs).Kind != models.NetworkStateInitialized {
			continue
		}
		manager, ok := m.session.Manager(network.UIDs)
		if !ok {
			m.createManager(network)
			continue
		}
		if manager.State().Kind == chain.ManagerConnectedState {
			m.RegisterCurrencies(manager)
		}
	}
}

// SetManagerModes replaces the desired sync modes and applies them to the
// running managers.
func (m *NetworkManager) SetManagerModes(modes map[string]models.SyncMode) {
	next := make(map[string]models.SyncMode, len(modes))
	for id, mode := range modes {
		next[strings.ToLower(id)] = mode
	}

	m.mu.Lock()
	m.modes = next
	m.mu.Unlock()

	for _, manager := range m.session.Managers() {
		mode := m.modeFor(manager.Network())
		if manager.Mode() != mode {
			manager.SetMode(mode)
		}
	}
}

// Enabled reports whether the currency is in the enabled set.
func (m *NetworkManager) Enabled(currencyID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.enabled[strings.ToLower(currencyID)]
	return ok
}

func (m *NetworkManager) enabledCurrencies(network chain.Network) []chain.Currency {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []chain.Currency
	for _, c := range network.Currencies {
		if _, ok := m.enabled[strings.ToLower(c.UIDs)]; ok {
			out = append(out, c)
		}
	}
	return out
}

// modeFor returns the mode chosen for the network's native currency.
func (m *NetworkManager) modeFor(network chain.Network) models.SyncMode {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mode, ok := m.modes[strings.ToLower(network.Native.UIDs)]; ok && mode.Valid() {
		return mode
	}
	return models.DefaultSyncMode
}

func (m *NetworkManager) networkOf(currencyID string) (chain.Network, bool) {
	networkUIDs := chain.Currency{UIDs: currencyID}.NetworkUIDs()
	for _, n := range m.session.Networks() {
		if strings.EqualFold(n.UIDs, networkUIDs) && n.HasCurrency(currencyID) {
			return n, true
		}
	}
	return chain.Network{}, false
}
