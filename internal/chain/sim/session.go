package sim

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/chain/hd"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Session is a simulated [chain.Session].
type Session struct {
	dir      string
	listener chain.Listener
	mailbox  *mailbox
	done     chan struct{}
	logger   *logger.Logger

	mu          sync.Mutex
	account     chain.Account
	hdAccount   *hd.Account
	order       []string
	specs       map[string]NetworkSpec
	managers    map[string]*manager
	initialized map[string]bool
	announced   bool
	paused      bool
	wiped       bool
}

var _ chain.Session = (*Session)(nil)

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			s.mailbox.close()
			return
		case <-s.mailbox.wake:
		}

		items, closed := s.mailbox.take()
		for _, fn := range items {
			fn()
		}
		if closed {
			return
		}
	}
}

func (s *Session) post(fn func()) {
	s.mailbox.post(fn)
}

// Flush blocks until every event posted so far was delivered.
func (s *Session) Flush() {
	delivered := make(chan struct{})
	if !s.mailbox.post(func() { close(delivered) }) {
		return
	}
	select {
	case <-delivered:
	case <-s.done:
	}
}

// Account implements [chain.Session].
func (s *Session) Account() chain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

// Resume implements [chain.Session]. The first resume announces every
// network, later ones reconnect the existing managers.
func (s *Session) Resume() {
	s.mu.Lock()
	if s.wiped {
		s.mu.Unlock()
		return
	}
	s.paused = false
	first := !s.announced
	s.announced = true
	networks := s.networksLocked()
	managers := s.managersLocked()
	s.mu.Unlock()

	if first {
		s.post(func() { s.listener.HandleSystemEvent(s, chain.SystemCreated{}) })
		for _, n := range networks {
			s.post(func() { s.listener.HandleNetworkEvent(s, n, chain.NetworkCreated{}) })
			s.post(func() { s.listener.HandleSystemEvent(s, chain.SystemNetworkAdded{Network: n}) })
		}
		s.post(func() { s.listener.HandleSystemEvent(s, chain.SystemDiscoveredNetworks{Networks: networks}) })
		return
	}

	for _, m := range managers {
		m.Connect()
	}
}

// Pause implements [chain.Session].
func (s *Session) Pause() {
	s.mu.Lock()
	s.paused = true
	managers := s.managersLocked()
	s.mu.Unlock()

	for _, m := range managers {
		m.Disconnect()
	}
}

// Wipe implements [chain.Session].
func (s *Session) Wipe() error {
	s.mu.Lock()
	if s.wiped {
		s.mu.Unlock()
		return nil
	}
	s.wiped = true
	s.mu.Unlock()

	s.mailbox.close()
	<-s.done

	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("remove session dir: %w", err)
	}
	return nil
}

// Wiped reports whether Wipe was called.
func (s *Session) Wiped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wiped
}

// Dir returns the on-disk directory of the session.
func (s *Session) Dir() string {
	return s.dir
}

// Networks implements [chain.Session].
func (s *Session) Networks() []chain.Network {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.networksLocked()
}

func (s *Session) networksLocked() []chain.Network {
	out := make([]chain.Network, 0, len(s.order))
	for _, uids := range s.order {
		out = append(out, s.specs[uids].network())
	}
	return out
}

// Managers implements [chain.Session].
func (s *Session) Managers() []chain.WalletManager {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]chain.WalletManager, 0, len(s.managers))
	for _, m := range s.managersLocked() {
		out = append(out, m)
	}
	return out
}

func (s *Session) managersLocked() []*manager {
	out := make([]*manager, 0, len(s.managers))
	for _, uids := range s.order {
		if m, ok := s.managers[uids]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Manager implements [chain.Session].
func (s *Session) Manager(networkUIDs string) (chain.WalletManager, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.managers[networkUIDs]
	if !ok {
		return nil, false
	}
	return m, true
}

// Wallets implements [chain.Session].
func (s *Session) Wallets() []chain.Wallet {
	s.mu.Lock()
	managers := s.managersLocked()
	s.mu.Unlock()

	var out []chain.Wallet
	for _, m := range managers {
		out = append(out, m.Wallets()...)
	}
	return out
}

// AccountIsInitialized implements [chain.Session].
func (s *Session) AccountIsInitialized(network chain.Network) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isInitializedLocked(network.UIDs)
}

func (s *Session) isInitializedLocked(uids string) bool {
	spec, ok := s.specs[uids]
	if !ok {
		return false
	}
	if !spec.RequiresAccountInit || s.initialized[uids] {
		return true
	}
	return s.hdAccount != nil && s.hdAccount.IsInitialized(uids)
}

// AccountInitialize implements [chain.Session].
func (s *Session) AccountInitialize(ctx context.Context, network chain.Network, create bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wiped {
		return nil, chain.ErrSessionWiped
	}
	spec, ok := s.specs[network.UIDs]
	if !ok {
		return nil, fmt.Errorf("%w: %s", chain.ErrUnknownNetwork, network.UIDs)
	}
	if s.isInitializedLocked(network.UIDs) {
		return s.account.Serialize(), nil
	}

	switch {
	case len(spec.Candidates) > 1:
		return nil, &chain.MultipleAccountsError{Candidates: slices.Clone(spec.Candidates)}
	case len(spec.Candidates) == 1:
		return s.markInitializedLocked(network.UIDs)
	case !create:
		return nil, chain.ErrAccountCantCreate
	default:
		return s.markInitializedLocked(network.UIDs)
	}
}

// AccountInitializeUsing implements [chain.Session].
func (s *Session) AccountInitializeUsing(ctx context.Context, network chain.Network, candidate chain.AccountCandidate) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	spec, ok := s.specs[network.UIDs]
	if !ok {
		return nil, fmt.Errorf("%w: %s", chain.ErrUnknownNetwork, network.UIDs)
	}
	if !slices.ContainsFunc(spec.Candidates, func(c chain.AccountCandidate) bool { return c.ID == candidate.ID }) {
		return nil, chain.ErrAccountInitializeFailed
	}
	return s.markInitializedLocked(network.UIDs)
}

func (s *Session) markInitializedLocked(uids string) ([]byte, error) {
	s.initialized[uids] = true
	if s.hdAccount == nil {
		return s.account.Serialize(), nil
	}

	updated, err := s.hdAccount.WithInitialized(uids)
	if err != nil {
		return nil, err
	}
	s.hdAccount = updated
	s.account = updated
	return updated.Serialize(), nil
}

// CreateWalletManager implements [chain.Session]. Creating a manager twice
// for the same network is a no-op.
func (s *Session) CreateWalletManager(network chain.Network, mode models.SyncMode, currencies []chain.Currency) error {
	s.mu.Lock()
	if s.wiped {
		s.mu.Unlock()
		return chain.ErrSessionWiped
	}
	spec, ok := s.specs[network.UIDs]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", chain.ErrUnknownNetwork, network.UIDs)
	}
	if _, exists := s.managers[network.UIDs]; exists {
		s.mu.Unlock()
		return nil
	}

	m := newManager(s, spec.network(), mode)
	s.managers[network.UIDs] = m
	s.mu.Unlock()

	s.post(func() { s.listener.HandleSystemEvent(s, chain.SystemManagerAdded{Manager: m}) })
	s.post(func() { s.listener.HandleManagerEvent(s, m, chain.ManagerCreated{}) })

	m.register(network.Native)
	for _, c := range currencies {
		if c.UIDs == network.Native.UIDs || !network.HasCurrency(c.UIDs) {
			continue
		}
		m.register(c)
	}
	return nil
}

// Receive credits amount to the wallet of currencyUIDs and emits the
// transfer and balance events.
func (s *Session) Receive(currencyUIDs, hash string, amount decimal.Decimal) error {
	m, err := s.managerForCurrency(currencyUIDs)
	if err != nil {
		return err
	}
	return m.addTransfer(currencyUIDs, chain.Transfer{
		Hash:      hash,
		Amount:    amount,
		Fee:       decimal.Zero,
		Direction: models.TransferReceived,
		State:     chain.TransferStateIncluded,
	})
}

// DeleteTransfer removes a transfer and emits the deletion event.
func (s *Session) DeleteTransfer(currencyUIDs, hash string) error {
	m, err := s.managerForCurrency(currencyUIDs)
	if err != nil {
		return err
	}
	return m.deleteTransfer(currencyUIDs, hash)
}

// DeleteWallet removes a wallet and emits the deletion event.
func (s *Session) DeleteWallet(currencyUIDs string) error {
	m, err := s.managerForCurrency(currencyUIDs)
	if err != nil {
		return err
	}
	return m.deleteWallet(currencyUIDs)
}

// RecommendSync emits a sync recommendation for the network manager.
func (s *Session) RecommendSync(networkUIDs string, depth chain.SyncDepth) error {
	s.mu.Lock()
	m, ok := s.managers[networkUIDs]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", chain.ErrUnknownNetwork, networkUIDs)
	}

	s.post(func() { s.listener.HandleManagerEvent(s, m, chain.ManagerSyncRecommended{Depth: depth}) })
	return nil
}

// Emit delivers arbitrary events through the listener. It lets callers
// exercise event kinds the simulation never produces on its own.
func (s *Session) Emit(fn func(listener chain.Listener)) {
	s.post(func() { fn(s.listener) })
}

func (s *Session) managerForCurrency(currencyUIDs string) (*manager, error) {
	networkUIDs := chain.Currency{UIDs: currencyUIDs}.NetworkUIDs()

	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.managers[networkUIDs]
	if !ok {
		return nil, fmt.Errorf("%w: %s", chain.ErrUnknownNetwork, networkUIDs)
	}
	return m, nil
}

// SyncRequests returns every depth the network manager was asked to sync to.
func (s *Session) SyncRequests(networkUIDs string) []chain.SyncDepth {
	s.mu.Lock()
	m, ok := s.managers[networkUIDs]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return m.SyncRequests()
}
