package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/chain/sim"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const (
	btcNative    = "bitcoin-mainnet:__native__"
	hederaNative = "hedera-mainnet:__native__"
)

// memorySelectionRepo хранит выбор кошельков в памяти.
type memorySelectionRepo struct {
	mu      sync.Mutex
	enabled []string
	modes   map[string]models.SyncMode
	loadErr error
	loads   int
}

var _ store.WalletSelectionRepository = (*memorySelectionRepo)(nil)

func (r *memorySelectionRepo) EnabledWallets(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return slices.Clone(r.enabled), nil
}

func (r *memorySelectionRepo) SetEnabledWallets(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = slices.Clone(ids)
	return nil
}

func (r *memorySelectionRepo) WalletModes(context.Context) (map[string]models.SyncMode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]models.SyncMode, len(r.modes))
	for k, v := range r.modes {
		out[k] = v
	}
	return out, nil
}

func (r *memorySelectionRepo) SetWalletMode(_ context.Context, id string, mode models.SyncMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.modes == nil {
		r.modes = make(map[string]models.SyncMode)
	}
	r.modes[id] = mode
	return nil
}

type orchestratorFixture struct {
	o       *SyncOrchestrator
	vault   *vaultFixture
	storage string
}

func newOrchestratorFixture(t *testing.T, storageDir string) *orchestratorFixture {
	t.Helper()
	f := newVaultFixture(t)
	f.setup(t)

	log := logger.Nop()
	m := metrics.NewIsolated()
	defaults := []string{btcNative, "ethereum-mainnet:__native__", hederaNative}
	selection := NewWalletSelectionProvider(&memorySelectionRepo{}, defaults, log)

	o := NewSyncOrchestrator(
		sim.NewEngine(sim.DefaultNetworks(true), log),
		selection,
		NewNetworkInitializer(f.vault, nil, m, log),
		OrchestratorOptions{
			StorageDir:         storageDir,
			Mainnet:            true,
			FastThrottle:       time.Millisecond,
			CoalescingThrottle: time.Millisecond,
		},
		m, log,
	)
	t.Cleanup(func() {
		if o.IsOpen() {
			_ = o.Close(true)
		}
		_ = o.Wipe()
	})
	return &orchestratorFixture{o: o, vault: f, storage: storageDir}
}

func (of *orchestratorFixture) account(t *testing.T) chain.Account {
	t.Helper()
	account, err := of.vault.vault.GetAccount(context.Background())
	require.NoError(t, err)
	return account
}

func (of *orchestratorFixture) open(t *testing.T) *EventAggregator {
	t.Helper()
	require.NoError(t, of.o.Open(context.Background(), of.account(t)))
	agg, ok := of.o.Aggregator()
	require.True(t, ok)
	return agg
}

func (of *orchestratorFixture) simSession(t *testing.T) *sim.Session {
	t.Helper()
	of.o.mu.Lock()
	defer of.o.mu.Unlock()
	s, ok := of.o.session.(*sim.Session)
	require.True(t, ok)
	return s
}

func waitWallet(t *testing.T, agg *EventAggregator, id string) models.WalletView {
	t.Helper()
	var view models.WalletView
	require.Eventually(t, func() bool {
		var ok bool
		view, ok = agg.WalletSnapshot(id)
		return ok
	}, 2*time.Second, 5*time.Millisecond, "wallet %s never appeared", id)
	return view
}

func waitWalletState(t *testing.T, agg *EventAggregator, id string, kind models.WalletStateKind) {
	t.Helper()
	require.Eventually(t, func() bool {
		s, ok := agg.WalletStateSnapshot(id)
		return ok && s.Kind == kind
	}, 2*time.Second, 5*time.Millisecond, "wallet %s never reached %s", id, kind)
}

// recoverError выполняет fn и возвращает значение паники как ошибку.
func recoverError(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("%v", r)
	}()
	fn()
	return nil
}

// ── Open / Close ─────────────────────────────────────────────────────────────

func TestSyncOrchestrator_OpenSyncsEnabledWallets(t *testing.T) {
	of := newOrchestratorFixture(t, t.TempDir())
	agg := of.open(t)

	assert.True(t, of.o.IsOpen())
	waitWallet(t, agg, btcNative)
	waitWallet(t, agg, "ethereum-mainnet:__native__")
	waitWalletState(t, agg, btcNative, models.WalletStateInitialized)

	// hedera требует активации аккаунта
	waitWalletState(t, agg, hederaNative, models.WalletStateWaitingOnAction)
	_, ok := agg.WalletSnapshot(hederaNative)
	assert.False(t, ok)

	require.Eventually(t, agg.Discovered, time.Second, 5*time.Millisecond)
	assert.Len(t, agg.NetworksSnapshot(), 3)
}

func TestSyncOrchestrator_InitializeWallet(t *testing.T) {
	ctx := context.Background()
	of := newOrchestratorFixture(t, t.TempDir())
	before := of.account(t).Serialize()
	agg := of.open(t)

	waitWalletState(t, agg, hederaNative, models.WalletStateWaitingOnAction)

	state, err := of.o.InitializeWallet(ctx, hederaNative)
	require.NoError(t, err)
	assert.Equal(t, models.NetworkInitialized(), state)

	waitWallet(t, agg, hederaNative)
	waitWalletState(t, agg, hederaNative, models.WalletStateInitialized)
	assert.NotEqual(t, before, of.account(t).Serialize(), "активация сохранена в хранилище")

	// повторный вызов ничего не делает
	state, err = of.o.InitializeWallet(ctx, hederaNative)
	require.NoError(t, err)
	assert.Equal(t, models.NetworkInitialized(), state)
}

func TestSyncOrchestrator_InitializeWallet_Errors(t *testing.T) {
	of := newOrchestratorFixture(t, t.TempDir())

	_, err := of.o.InitializeWallet(context.Background(), hederaNative)
	assert.ErrorIs(t, err, ErrSessionClosed)

	of.open(t)
	_, err = of.o.InitializeWallet(context.Background(), "doge-mainnet:__native__")
	assert.ErrorIs(t, err, ErrUnknownWallet)
}

func TestSyncOrchestrator_TransfersAndBalance(t *testing.T) {
	of := newOrchestratorFixture(t, t.TempDir())
	agg := of.open(t)
	waitWallet(t, agg, btcNative)

	require.NoError(t, of.simSession(t).Receive(btcNative, "tx1", decimal.NewFromInt(3)))

	require.Eventually(t, func() bool {
		transfers, ok := agg.TransfersSnapshot(btcNative)
		return ok && len(transfers) == 1 && transfers[0].Hash == "tx1"
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		view, ok := agg.WalletSnapshot("btc")
		return ok && view.Balance == "3"
	}, time.Second, 5*time.Millisecond)
}

func TestSyncOrchestrator_ReopenReusesSession(t *testing.T) {
	of := newOrchestratorFixture(t, t.TempDir())
	agg := of.open(t)
	waitWallet(t, agg, btcNative)
	require.NoError(t, of.simSession(t).Receive(btcNative, "tx1", decimal.NewFromInt(3)))
	require.Eventually(t, func() bool {
		view, _ := agg.WalletSnapshot(btcNative)
		return view.Balance == "3"
	}, time.Second, 5*time.Millisecond)

	session := of.simSession(t)
	require.NoError(t, of.o.Close(false))
	assert.False(t, of.o.IsOpen())
	_, ok := of.o.Aggregator()
	assert.False(t, ok)
	assert.False(t, session.Wiped())

	reopened := of.open(t)
	assert.Same(t, session, of.simSession(t))
	assert.NotSame(t, agg, reopened)

	// новый агрегатор засеян состоянием сессии сразу после открытия
	view, ok := reopened.WalletSnapshot(btcNative)
	require.True(t, ok)
	assert.Equal(t, "3", view.Balance)

	require.Eventually(t, func() bool {
		view, _ := reopened.WalletSnapshot(btcNative)
		return view.Connected
	}, time.Second, 5*time.Millisecond)
}

func TestSyncOrchestrator_CloseWithWipe(t *testing.T) {
	of := newOrchestratorFixture(t, t.TempDir())
	agg := of.open(t)
	waitWallet(t, agg, btcNative)

	session := of.simSession(t)
	dir := session.Dir()
	require.DirExists(t, dir)

	require.NoError(t, of.o.Close(true))
	assert.True(t, session.Wiped())
	assert.NoDirExists(t, dir)

	// следующее открытие создаёт новую сессию
	of.open(t)
	assert.NotSame(t, session, of.simSession(t))
}

func TestSyncOrchestrator_Wipe(t *testing.T) {
	t.Run("without session removes storage", func(t *testing.T) {
		storage := filepath.Join(t.TempDir(), "engine")
		require.NoError(t, os.MkdirAll(filepath.Join(storage, "stale"), 0o700))

		of := newOrchestratorFixture(t, storage)
		require.NoError(t, of.o.Wipe())
		assert.NoDirExists(t, storage)
	})

	t.Run("closed session is wiped", func(t *testing.T) {
		of := newOrchestratorFixture(t, t.TempDir())
		agg := of.open(t)
		waitWallet(t, agg, btcNative)
		session := of.simSession(t)
		require.NoError(t, of.o.Close(false))

		require.NoError(t, of.o.Wipe())
		assert.True(t, session.Wiped())
	})

	t.Run("open session is closed and wiped", func(t *testing.T) {
		of := newOrchestratorFixture(t, t.TempDir())
		of.open(t)
		session := of.simSession(t)

		require.NoError(t, of.o.Wipe())
		assert.False(t, of.o.IsOpen())
		assert.True(t, session.Wiped())
	})
}

// ── Preconditions ────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Preconditions(t *testing.T) {
	t.Run("double open", func(t *testing.T) {
		of := newOrchestratorFixture(t, t.TempDir())
		of.open(t)
		account := of.account(t)

		err := recoverError(func() { _ = of.o.Open(context.Background(), account) })
		assert.ErrorIs(t, err, ErrPreconditionViolation)
		assert.True(t, of.o.IsOpen(), "первая сессия не тронута")
	})

	t.Run("close when closed", func(t *testing.T) {
		of := newOrchestratorFixture(t, t.TempDir())

		err := recoverError(func() { _ = of.o.Close(false) })
		assert.ErrorIs(t, err, ErrPreconditionViolation)
	})

	t.Run("empty account serialization", func(t *testing.T) {
		of := newOrchestratorFixture(t, t.TempDir())
		account := mock.NewMockAccount(gomock.NewController(t))
		account.EXPECT().Serialize().Return(nil)

		err := recoverError(func() { _ = of.o.Open(context.Background(), account) })
		assert.ErrorIs(t, err, ErrPreconditionViolation)
		assert.False(t, of.o.IsOpen())
	})
}

func TestSyncOrchestrator_StorageUnavailable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	of := newOrchestratorFixture(t, file)
	err := of.o.Open(context.Background(), of.account(t))

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, of.o.IsOpen())
}

func TestSyncOrchestrator_EngineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mock.NewMockEngine(ctrl)
	engine.EXPECT().CreateSession(gomock.Any(), gomock.Any(), true, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("engine refused"))

	of := newOrchestratorFixture(t, t.TempDir())
	of.o.engine = engine

	err := of.o.Open(context.Background(), of.account(t))
	assert.ErrorContains(t, err, "engine refused")
	assert.False(t, of.o.IsOpen())
}

func TestSyncOrchestrator_CloseIfOpen(t *testing.T) {
	of := newOrchestratorFixture(t, t.TempDir())

	closed, err := of.o.CloseIfOpen()
	require.NoError(t, err)
	assert.False(t, closed)

	of.open(t)
	session := of.simSession(t)

	closed, err = of.o.CloseIfOpen()
	require.NoError(t, err)
	assert.True(t, closed)
	assert.False(t, of.o.IsOpen())
	assert.False(t, session.Wiped())
}
