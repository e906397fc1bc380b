package sim

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/chain/hd"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// recorder keeps event names in delivery order.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, name)
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) HandleSystemEvent(_ chain.Session, e chain.SystemEvent) {
	r.add("system:" + e.SystemEventName())
}
func (r *recorder) HandleNetworkEvent(_ chain.Session, _ chain.Network, e chain.NetworkEvent) {
	r.add("network:" + e.NetworkEventName())
}
func (r *recorder) HandleManagerEvent(_ chain.Session, _ chain.WalletManager, e chain.ManagerEvent) {
	r.add("manager:" + e.ManagerEventName())
}
func (r *recorder) HandleWalletEvent(_ chain.Session, _ chain.WalletManager, _ chain.Wallet, e chain.WalletEvent) {
	r.add("wallet:" + e.WalletEventName())
}
func (r *recorder) HandleTransferEvent(_ chain.Session, _ chain.WalletManager, _ chain.Wallet, _ chain.Transfer, e chain.TransferEvent) {
	r.add("transfer:" + e.TransferEventName())
}

func newTestSession(t *testing.T, specs []NetworkSpec) (*Session, *recorder) {
	t.Helper()

	acct, err := hd.NewAccountFactory().CreateFromPhrase([]byte(testPhrase), time.Unix(1_700_000_000, 0), "dev", true)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rec := &recorder{}
	s, err := NewEngine(specs, logger.Nop()).CreateSession(ctx, acct, true, t.TempDir(), rec)
	require.NoError(t, err)
	return s.(*Session), rec
}

func TestSession_Resume_AnnouncesNetworksOnce(t *testing.T) {
	s, rec := newTestSession(t, DefaultNetworks(true))

	s.Resume()
	s.Flush()

	names := rec.names()
	assert.Equal(t, "system:created", names[0])
	assert.Equal(t, "system:discovered_networks", names[len(names)-1])
	assert.Equal(t, 3, countOf(names, "system:network_added"))

	s.Pause()
	s.Resume()
	s.Flush()
	assert.Equal(t, 3, countOf(rec.names(), "system:network_added"), "networks are announced only once")
}

func TestSession_CreateWalletManager_EmitsWallets(t *testing.T) {
	s, rec := newTestSession(t, DefaultNetworks(true))
	eth := s.Networks()[1]

	require.NoError(t, s.CreateWalletManager(eth, models.SyncModeAPIOnly, eth.Currencies))
	require.NoError(t, s.CreateWalletManager(eth, models.SyncModeAPIOnly, eth.Currencies))
	s.Flush()

	assert.Equal(t, 1, countOf(rec.names(), "manager:created"))
	assert.Equal(t, 2, countOf(rec.names(), "manager:wallet_added"))
	assert.Len(t, s.Wallets(), 2)
}

func TestSession_Receive_UpdatesBalance(t *testing.T) {
	s, rec := newTestSession(t, DefaultNetworks(true))
	btc := s.Networks()[0]
	require.NoError(t, s.CreateWalletManager(btc, models.SyncModeAPIOnly, nil))

	require.NoError(t, s.Receive(btc.Native.UIDs, "tx1", decimal.NewFromInt(5)))
	s.Flush()

	wallets := s.Wallets()
	require.Len(t, wallets, 1)
	assert.True(t, decimal.NewFromInt(5).Equal(wallets[0].Balance))
	assert.Contains(t, rec.names(), "wallet:transfer_added")
	assert.Contains(t, rec.names(), "wallet:balance_updated")
}

func TestSession_AccountInitialize(t *testing.T) {
	specs := []NetworkSpec{
		{UIDs: "hedera-mainnet", Name: "Hedera", Code: "hbar", Mainnet: true, RequiresAccountInit: true},
		{UIDs: "multi-mainnet", Name: "Multi", Code: "mlt", Mainnet: true, RequiresAccountInit: true,
			Candidates: []chain.AccountCandidate{Candidate("0.0.2", 10), Candidate("0.0.1", 3)}},
		{UIDs: "bitcoin-mainnet", Name: "Bitcoin", Code: "btc", Mainnet: true},
	}
	s, _ := newTestSession(t, specs)
	ctx := context.Background()
	nets := s.Networks()

	assert.False(t, s.AccountIsInitialized(nets[0]))
	assert.True(t, s.AccountIsInitialized(nets[2]))

	_, err := s.AccountInitialize(ctx, nets[0], false)
	assert.ErrorIs(t, err, chain.ErrAccountCantCreate)

	data, err := s.AccountInitialize(ctx, nets[0], true)
	require.NoError(t, err)
	assert.True(t, s.AccountIsInitialized(nets[0]))

	restored, err := hd.NewAccountFactory().CreateFromSerialization(data, "dev")
	require.NoError(t, err)
	assert.True(t, restored.(*hd.Account).IsInitialized("hedera-mainnet"))

	_, err = s.AccountInitialize(ctx, nets[1], true)
	var multi *chain.MultipleAccountsError
	require.True(t, errors.As(err, &multi))
	assert.Len(t, multi.Candidates, 2)

	_, err = s.AccountInitializeUsing(ctx, nets[1], Candidate("0.0.9", 0))
	assert.ErrorIs(t, err, chain.ErrAccountInitializeFailed)

	_, err = s.AccountInitializeUsing(ctx, nets[1], multi.Candidates[1])
	require.NoError(t, err)
	assert.True(t, s.AccountIsInitialized(nets[1]))
}

func TestSession_Wipe_RemovesDirectory(t *testing.T) {
	s, _ := newTestSession(t, DefaultNetworks(true))

	_, err := os.Stat(s.Dir())
	require.NoError(t, err)

	require.NoError(t, s.Wipe())
	require.NoError(t, s.Wipe())

	_, err = os.Stat(s.Dir())
	assert.True(t, os.IsNotExist(err))
	assert.True(t, s.Wiped())
	assert.ErrorIs(t, s.CreateWalletManager(s.Networks()[0], models.SyncModeAPIOnly, nil), chain.ErrSessionWiped)
}

func TestEngine_SkipsOtherNetworkType(t *testing.T) {
	s, _ := newTestSession(t, DefaultNetworks(false))
	assert.Empty(t, s.Networks())
}

func countOf(names []string, target string) int {
	n := 0
	for _, name := range names {
		if name == target {
			n++
		}
	}
	return n
}

func TestSelectNetworks(t *testing.T) {
	specs := DefaultNetworks(true)

	selected, err := SelectNetworks(specs, []string{"HBAR", " btc"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "hedera-mainnet", selected[0].UIDs)
	assert.Equal(t, "bitcoin-mainnet:__native__", selected[1].NativeID())

	_, err = SelectNetworks(specs, []string{"doge"})
	assert.Error(t, err)
}
