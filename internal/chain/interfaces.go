// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chain

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chain_mock.go -package=mock

// Account is the engine's deterministic account derived from a phrase.
type Account interface {
	// Serialize returns the opaque bytes that CreateFromSerialization
	// accepts back.
	Serialize() []byte
	// UIDs identifies the account across devices.
	UIDs() string
	// Timestamp is the account creation time.
	Timestamp() time.Time
	// FilesystemIdentifier names the on-disk directory of the account.
	FilesystemIdentifier() string
}

// AccountFactory creates accounts from a phrase or from serialized bytes.
type AccountFactory interface {
	CreateFromPhrase(phrase []byte, creation time.Time, deviceID string, isMainnet bool) (Account, error)
	CreateFromSerialization(data []byte, deviceID string) (Account, error)
}

// Key is an asymmetric key pair used to sign API requests.
type Key interface {
	// EncodeAsPrivate returns the private key in its portable string form.
	EncodeAsPrivate() []byte
	// PublicKey returns the compressed public key.
	PublicKey() []byte
}

// KeyFactory derives API keys.
type KeyFactory interface {
	CreateForAPIAuth(phrase []byte) (Key, error)
	CreateFromPrivateKeyString(encoded []byte) (Key, error)
}

// Engine creates sessions. A session owns all on-disk state below
// storagePath.
type Engine interface {
	CreateSession(ctx context.Context, account Account, isMainnet bool, storagePath string, listener Listener) (Session, error)
}

// Session is one running engine instance bound to an account.
type Session interface {
	Account() Account

	// Resume connects the session and starts delivering events.
	Resume()
	// Pause disconnects every wallet manager. Events stop until Resume.
	Pause()
	// Wipe removes all on-disk state of the session. The session must not
	// be used afterwards.
	Wipe() error

	Networks() []Network
	Managers() []WalletManager
	Manager(networkUIDs string) (WalletManager, bool)
	Wallets() []Wallet

	// AccountIsInitialized reports whether the account was activated on
	// network.
	AccountIsInitialized(network Network) bool
	// AccountInitialize activates the account on network and returns the
	// updated account serialization. When create is false the engine only
	// looks up an existing on-chain account.
	AccountInitialize(ctx context.Context, network Network, create bool) ([]byte, error)
	// AccountInitializeUsing activates the account with an already
	// existing on-chain candidate.
	AccountInitializeUsing(ctx context.Context, network Network, candidate AccountCandidate) ([]byte, error)

	// CreateWalletManager starts a wallet manager for network tracking
	// the given currencies.
	CreateWalletManager(network Network, mode models.SyncMode, currencies []Currency) error
}

// WalletManager syncs all wallets of one network.
type WalletManager interface {
	Network() Network
	State() ManagerState
	Mode() models.SyncMode
	SetMode(mode models.SyncMode)
	Connect()
	Disconnect()
	SyncToDepth(depth SyncDepth)
	// RegisterWalletFor creates the wallet for currency if it does not
	// exist yet.
	RegisterWalletFor(currency Currency) (Wallet, error)
	Wallets() []Wallet
}

// Listener receives session events. All callbacks arrive on a single
// engine-owned goroutine and must not block.
type Listener interface {
	HandleSystemEvent(session Session, event SystemEvent)
	HandleNetworkEvent(session Session, network Network, event NetworkEvent)
	HandleManagerEvent(session Session, manager WalletManager, event ManagerEvent)
	HandleWalletEvent(session Session, manager WalletManager, wallet Wallet, event WalletEvent)
	HandleTransferEvent(session Session, manager WalletManager, wallet Wallet, transfer Transfer, event TransferEvent)
}
