package sim

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type simWallet struct {
	wallet    chain.Wallet
	transfers []chain.Transfer
}

// manager is a simulated [chain.WalletManager].
type manager struct {
	session *Session
	network chain.Network

	mu      sync.Mutex
	state   chain.ManagerState
	mode    models.SyncMode
	order   []string
	wallets map[string]*simWallet
	syncs   []chain.SyncDepth
}

var _ chain.WalletManager = (*manager)(nil)

func newManager(s *Session, network chain.Network, mode models.SyncMode) *manager {
	return &manager{
		session: s,
		network: network,
		state:   chain.ManagerState{Kind: chain.ManagerCreatedState},
		mode:    mode,
		wallets: make(map[string]*simWallet),
	}
}

func (m *manager) Network() chain.Network { return m.network }

func (m *manager) State() chain.ManagerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *manager) Mode() models.SyncMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

func (m *manager) SetMode(mode models.SyncMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}

func (m *manager) Connect() {
	m.transition(chain.ManagerState{Kind: chain.ManagerConnectedState})
}

func (m *manager) Disconnect() {
	m.transition(chain.ManagerState{Kind: chain.ManagerDisconnectedState, Reason: "requested"})
}

func (m *manager) transition(next chain.ManagerState) {
	m.mu.Lock()
	old := m.state
	if old.Kind == next.Kind {
		m.mu.Unlock()
		return
	}
	m.state = next
	m.mu.Unlock()

	m.session.post(func() {
		m.session.listener.HandleManagerEvent(m.session, m, chain.ManagerChanged{Old: old, New: next})
	})
}

func (m *manager) SyncToDepth(depth chain.SyncDepth) {
	m.mu.Lock()
	m.syncs = append(m.syncs, depth)
	m.mu.Unlock()

	m.session.post(func() { m.session.listener.HandleManagerEvent(m.session, m, chain.ManagerSyncStarted{}) })
	m.session.post(func() {
		m.session.listener.HandleManagerEvent(m.session, m, chain.ManagerSyncProgress{PercentComplete: 100})
	})
	m.session.post(func() { m.session.listener.HandleManagerEvent(m.session, m, chain.ManagerSyncStopped{}) })
}

// SyncRequests returns every depth passed to SyncToDepth.
func (m *manager) SyncRequests() []chain.SyncDepth {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.syncs)
}

func (m *manager) RegisterWalletFor(currency chain.Currency) (chain.Wallet, error) {
	if !m.network.HasCurrency(currency.UIDs) {
		return chain.Wallet{}, fmt.Errorf("%w: currency %s", chain.ErrUnknownNetwork, currency.UIDs)
	}
	return m.register(currency), nil
}

func (m *manager) register(currency chain.Currency) chain.Wallet {
	m.mu.Lock()
	if w, ok := m.wallets[currency.UIDs]; ok {
		m.mu.Unlock()
		return w.wallet
	}
	w := &simWallet{wallet: chain.Wallet{Currency: currency, NetworkUID: m.network.UIDs}}
	m.wallets[currency.UIDs] = w
	m.order = append(m.order, currency.UIDs)
	snapshot := w.wallet
	m.mu.Unlock()

	m.session.post(func() {
		m.session.listener.HandleWalletEvent(m.session, m, snapshot, chain.WalletCreated{})
	})
	m.session.post(func() {
		m.session.listener.HandleManagerEvent(m.session, m, chain.ManagerWalletAdded{Wallet: snapshot})
	})
	return snapshot
}

func (m *manager) Wallets() []chain.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]chain.Wallet, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.wallets[id].wallet)
	}
	return out
}

func (m *manager) addTransfer(currencyUIDs string, t chain.Transfer) error {
	m.mu.Lock()
	w, ok := m.wallets[currencyUIDs]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: wallet %s", chain.ErrUnknownNetwork, currencyUIDs)
	}
	w.transfers = append(w.transfers, t)
	if t.Direction == models.TransferSent {
		w.wallet.Balance = w.wallet.Balance.Sub(t.Amount).Sub(t.Fee)
	} else {
		w.wallet.Balance = w.wallet.Balance.Add(t.Amount)
	}
	snapshot := w.wallet
	m.mu.Unlock()

	m.session.post(func() {
		m.session.listener.HandleWalletEvent(m.session, m, snapshot, chain.WalletTransferAdded{Transfer: t})
	})
	m.session.post(func() {
		m.session.listener.HandleTransferEvent(m.session, m, snapshot, t, chain.TransferCreated{})
	})
	m.session.post(func() {
		m.session.listener.HandleWalletEvent(m.session, m, snapshot, chain.WalletBalanceUpdated{Wallet: snapshot})
	})
	m.session.post(func() {
		m.session.listener.HandleManagerEvent(m.session, m, chain.ManagerWalletChanged{Wallet: snapshot})
	})
	return nil
}

func (m *manager) deleteTransfer(currencyUIDs, hash string) error {
	m.mu.Lock()
	w, ok := m.wallets[currencyUIDs]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: wallet %s", chain.ErrUnknownNetwork, currencyUIDs)
	}
	idx := slices.IndexFunc(w.transfers, func(t chain.Transfer) bool { return t.Hash == hash })
	if idx < 0 {
		m.mu.Unlock()
		return nil
	}
	t := w.transfers[idx]
	w.transfers = slices.Delete(w.transfers, idx, idx+1)
	snapshot := w.wallet
	m.mu.Unlock()

	m.session.post(func() {
		m.session.listener.HandleWalletEvent(m.session, m, snapshot, chain.WalletTransferDeleted{Transfer: t})
	})
	return nil
}

func (m *manager) deleteWallet(currencyUIDs string) error {
	m.mu.Lock()
	w, ok := m.wallets[currencyUIDs]
	if !ok {
		m.mu.Unlock()
		return nil
	}
	delete(m.wallets, currencyUIDs)
	m.order = slices.DeleteFunc(m.order, func(id string) bool { return id == currencyUIDs })
	snapshot := w.wallet
	m.mu.Unlock()

	m.session.post(func() {
		m.session.listener.HandleManagerEvent(m.session, m, chain.ManagerWalletDeleted{Wallet: snapshot})
	})
	m.session.post(func() {
		m.session.listener.HandleWalletEvent(m.session, m, snapshot, chain.WalletDeleted{})
	})
	return nil
}
