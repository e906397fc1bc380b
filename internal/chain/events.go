package chain

// SystemEvent is emitted by a session about itself.
type SystemEvent interface{ SystemEventName() string }

// NetworkEvent is emitted about one network.
type NetworkEvent interface{ NetworkEventName() string }

// ManagerEvent is emitted about one wallet manager.
type ManagerEvent interface{ ManagerEventName() string }

// WalletEvent is emitted about one wallet.
type WalletEvent interface{ WalletEventName() string }

// TransferEvent is emitted about one transfer.
type TransferEvent interface{ TransferEventName() string }

type (
	SystemCreated            struct{}
	SystemNetworkAdded       struct{ Network Network }
	SystemManagerAdded       struct{ Manager WalletManager }
	SystemDiscoveredNetworks struct{ Networks []Network }
	SystemDeleted            struct{}
)

func (SystemCreated) SystemEventName() string            { return "created" }
func (SystemNetworkAdded) SystemEventName() string       { return "network_added" }
func (SystemManagerAdded) SystemEventName() string       { return "manager_added" }
func (SystemDiscoveredNetworks) SystemEventName() string { return "discovered_networks" }
func (SystemDeleted) SystemEventName() string            { return "deleted" }

type (
	NetworkCreated     struct{}
	NetworkUpdated     struct{}
	NetworkFeesUpdated struct{}
)

func (NetworkCreated) NetworkEventName() string     { return "created" }
func (NetworkUpdated) NetworkEventName() string     { return "updated" }
func (NetworkFeesUpdated) NetworkEventName() string { return "fees_updated" }

type (
	ManagerCreated         struct{}
	ManagerChanged         struct{ Old, New ManagerState }
	ManagerDeleted         struct{}
	ManagerSyncStarted     struct{}
	ManagerSyncProgress    struct{ PercentComplete float64 }
	ManagerSyncStopped     struct{ Reason string }
	ManagerSyncRecommended struct{ Depth SyncDepth }
	ManagerBlockUpdated    struct{ Height uint64 }
	ManagerWalletAdded     struct{ Wallet Wallet }
	ManagerWalletChanged   struct{ Wallet Wallet }
	ManagerWalletDeleted   struct{ Wallet Wallet }
)

func (ManagerCreated) ManagerEventName() string         { return "created" }
func (ManagerChanged) ManagerEventName() string         { return "changed" }
func (ManagerDeleted) ManagerEventName() string         { return "deleted" }
func (ManagerSyncStarted) ManagerEventName() string     { return "sync_started" }
func (ManagerSyncProgress) ManagerEventName() string    { return "sync_progress" }
func (ManagerSyncStopped) ManagerEventName() string     { return "sync_stopped" }
func (ManagerSyncRecommended) ManagerEventName() string { return "sync_recommended" }
func (ManagerBlockUpdated) ManagerEventName() string    { return "block_updated" }
func (ManagerWalletAdded) ManagerEventName() string     { return "wallet_added" }
func (ManagerWalletChanged) ManagerEventName() string   { return "wallet_changed" }
func (ManagerWalletDeleted) ManagerEventName() string   { return "wallet_deleted" }

type (
	WalletCreated           struct{}
	WalletBalanceUpdated    struct{ Wallet Wallet }
	WalletTransferAdded     struct{ Transfer Transfer }
	WalletTransferChanged   struct{ Transfer Transfer }
	WalletTransferSubmitted struct{ Transfer Transfer }
	WalletTransferDeleted   struct{ Transfer Transfer }
	WalletDeleted           struct{}
)

func (WalletCreated) WalletEventName() string           { return "created" }
func (WalletBalanceUpdated) WalletEventName() string    { return "balance_updated" }
func (WalletTransferAdded) WalletEventName() string     { return "transfer_added" }
func (WalletTransferChanged) WalletEventName() string   { return "transfer_changed" }
func (WalletTransferSubmitted) WalletEventName() string { return "transfer_submitted" }
func (WalletTransferDeleted) WalletEventName() string   { return "transfer_deleted" }
func (WalletDeleted) WalletEventName() string           { return "deleted" }

type (
	TransferCreated struct{}
	TransferChanged struct{ Old, New TransferState }
)

func (TransferCreated) TransferEventName() string { return "created" }
func (TransferChanged) TransferEventName() string { return "changed" }
