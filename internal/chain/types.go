package chain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Currency identifies an asset on a network. UIDs has the form
// "<network-uids>:<address or __native__>".
type Currency struct {
	UIDs     string `json:"uids"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
}

// NetworkUIDs returns the network part of the currency uids.
func (c Currency) NetworkUIDs() string {
	network, _, _ := strings.Cut(c.UIDs, ":")
	return network
}

// Network is a snapshot of a network known to the engine.
type Network struct {
	UIDs       string     `json:"uids"`
	Name       string     `json:"name"`
	IsMainnet  bool       `json:"is_mainnet"`
	Height     uint64     `json:"height"`
	Native     Currency   `json:"native"`
	Currencies []Currency `json:"currencies"`
}

// HasCurrency reports whether the network carries the currency uids.
func (n Network) HasCurrency(uids string) bool {
	for _, c := range n.Currencies {
		if strings.EqualFold(c.UIDs, uids) {
			return true
		}
	}
	return false
}

// Wallet is a snapshot of one currency wallet inside a wallet manager.
type Wallet struct {
	Currency   Currency        `json:"currency"`
	NetworkUID string          `json:"network_uids"`
	Balance    decimal.Decimal `json:"balance"`
}

// ID returns the identity used to key wallet views.
func (w Wallet) ID() string {
	return w.Currency.UIDs
}

// TransferState is the lifecycle state of a transfer.
type TransferState string

const (
	TransferStateCreated   TransferState = "created"
	TransferStateSubmitted TransferState = "submitted"
	TransferStateIncluded  TransferState = "included"
	TransferStateErrored   TransferState = "errored"
	TransferStateDeleted   TransferState = "deleted"
)

// Transfer is a snapshot of an engine transfer.
type Transfer struct {
	Hash          string                   `json:"hash"`
	Amount        decimal.Decimal          `json:"amount"`
	Fee           decimal.Decimal          `json:"fee"`
	Direction     models.TransferDirection `json:"direction"`
	State         TransferState            `json:"state"`
	Confirmations uint64                   `json:"confirmations"`
}

// ManagerStateKind enumerates wallet manager connection states.
type ManagerStateKind int

const (
	ManagerCreatedState ManagerStateKind = iota
	ManagerDisconnectedState
	ManagerConnectedState
	ManagerSyncingState
	ManagerDeletedState
)

func (k ManagerStateKind) String() string {
	switch k {
	case ManagerDisconnectedState:
		return "disconnected"
	case ManagerConnectedState:
		return "connected"
	case ManagerSyncingState:
		return "syncing"
	case ManagerDeletedState:
		return "deleted"
	default:
		return "created"
	}
}

// ManagerState is the connection state of a wallet manager.
type ManagerState struct {
	Kind   ManagerStateKind
	Reason string
}

// SyncDepth tells a wallet manager how far back a resync must go.
type SyncDepth int

const (
	SyncDepthFromLastConfirmedSend SyncDepth = iota
	SyncDepthFromLastTrustedBlock
	SyncDepthFromCreation
)

func (d SyncDepth) String() string {
	switch d {
	case SyncDepthFromLastTrustedBlock:
		return "from_last_trusted_block"
	case SyncDepthFromCreation:
		return "from_creation"
	default:
		return "from_last_confirmed_send"
	}
}

// AccountCandidate is one of several on-chain accounts that may back the
// same phrase on networks supporting multiple accounts per key.
type AccountCandidate struct {
	ID      string
	Balance decimal.Decimal
}
