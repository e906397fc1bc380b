// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncMode selects how a wallet manager talks to its network.
type SyncMode string

const (
	SyncModeAPIOnly        SyncMode = "api_only"
	SyncModeAPIWithP2PSend SyncMode = "api_with_p2p_submit"
	SyncModeP2PWithAPISync SyncMode = "p2p_with_api_sync"
	SyncModeP2POnly        SyncMode = "p2p_only"

	DefaultSyncMode = SyncModeAPIOnly
)

// Valid reports whether m is one of the known sync modes.
func (m SyncMode) Valid() bool {
	switch m {
	case SyncModeAPIOnly, SyncModeAPIWithP2PSend, SyncModeP2PWithAPISync, SyncModeP2POnly:
		return true
	}
	return false
}

// WalletView is a read-only projection of a chain engine wallet.
// All fields are comparable so views can be deduplicated with ==.
type WalletView struct {
	// ID is the currency uid, e.g. "bitcoin-mainnet:__native__".
	ID           string   `json:"id"`
	CurrencyCode string   `json:"currency_code"`
	NetworkID    string   `json:"network_id"`
	Balance      string   `json:"balance"`
	Mode         SyncMode `json:"mode"`
	Connected    bool     `json:"connected"`
}

// TransferDirection tells whether a transfer moved funds in or out.
type TransferDirection string

const (
	TransferSent      TransferDirection = "sent"
	TransferReceived  TransferDirection = "received"
	TransferRecovered TransferDirection = "recovered"
)

// TransferView is a read-only projection of a chain engine transfer.
type TransferView struct {
	Hash          string            `json:"hash"`
	WalletID      string            `json:"wallet_id"`
	Amount        string            `json:"amount"`
	Fee           string            `json:"fee"`
	Direction     TransferDirection `json:"direction"`
	State         string            `json:"state"`
	Confirmations uint64            `json:"confirmations"`
}
