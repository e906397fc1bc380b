// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hd implements chain accounts and API keys on top of BIP39
// mnemonics and BIP32 hierarchical deterministic keys.
package hd

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/tyler-smith/go-bip39"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
)

const accountVersion = 1

// ErrInvalidPhrase is returned when the phrase is not a valid mnemonic.
var ErrInvalidPhrase = errors.New("invalid recovery phrase")

// accountNamespace seeds the name-based uuid of every account.
var accountNamespace = uuid.MustParse("5d1f8a54-3c1e-4bd0-9a51-6b0f3d1c2e77")

type accountPayload struct {
	Version     uint8    `cbor:"1,keyasint"`
	DeviceID    string   `cbor:"2,keyasint"`
	Mainnet     bool     `cbor:"3,keyasint"`
	Created     int64    `cbor:"4,keyasint"`
	XPub        string   `cbor:"5,keyasint"`
	Initialized []string `cbor:"6,keyasint,omitempty"`
}

// Account is a deterministic account bound to one device.
type Account struct {
	payload accountPayload
	raw     []byte
}

var _ chain.Account = (*Account)(nil)

// Serialize implements [chain.Account].
func (a *Account) Serialize() []byte {
	return slices.Clone(a.raw)
}

// UIDs implements [chain.Account]. It is stable across devices because it
// depends on the extended public key only.
func (a *Account) UIDs() string {
	return uuid.NewSHA1(accountNamespace, []byte(a.payload.XPub)).String()
}

// Timestamp implements [chain.Account].
func (a *Account) Timestamp() time.Time {
	return time.Unix(a.payload.Created, 0).UTC()
}

// FilesystemIdentifier implements [chain.Account].
func (a *Account) FilesystemIdentifier() string {
	sum := sha256.Sum256([]byte(a.payload.XPub))
	return hex.EncodeToString(sum[:8])
}

// IsMainnet reports whether the account was created for mainnet.
func (a *Account) IsMainnet() bool {
	return a.payload.Mainnet
}

// IsInitialized reports whether the account was activated on the network.
func (a *Account) IsInitialized(networkUIDs string) bool {
	return slices.Contains(a.payload.Initialized, strings.ToLower(networkUIDs))
}

// WithInitialized returns a copy of the account marked as activated on
// the network.
func (a *Account) WithInitialized(networkUIDs string) (*Account, error) {
	p := a.payload
	p.Initialized = slices.Clone(p.Initialized)
	if !slices.Contains(p.Initialized, strings.ToLower(networkUIDs)) {
		p.Initialized = append(p.Initialized, strings.ToLower(networkUIDs))
		slices.Sort(p.Initialized)
	}
	return newAccount(p)
}

func newAccount(p accountPayload) (*Account, error) {
	raw, err := cbor.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode account: %w", err)
	}
	return &Account{payload: p, raw: raw}, nil
}

// AccountFactory creates [Account] values.
type AccountFactory struct{}

// NewAccountFactory returns a [chain.AccountFactory] backed by BIP32.
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// CreateFromPhrase implements [chain.AccountFactory].
func (f *AccountFactory) CreateFromPhrase(phrase []byte, creation time.Time, deviceID string, isMainnet bool) (chain.Account, error) {
	mnemonic := strings.TrimSpace(string(phrase))
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidPhrase
	}

	params := &chaincfg.TestNet3Params
	if isMainnet {
		params = &chaincfg.MainNetParams
	}

	key, err := deriveKey(bip39.NewSeed(mnemonic, ""), params,
		hdkeychain.HardenedKeyStart+44,
		hdkeychain.HardenedKeyStart+0,
		hdkeychain.HardenedKeyStart+0,
	)
	if err != nil {
		return nil, err
	}

	xpub, err := key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("neuter account key: %w", err)
	}

	return newAccount(accountPayload{
		Version:  accountVersion,
		DeviceID: deviceID,
		Mainnet:  isMainnet,
		Created:  creation.Unix(),
		XPub:     xpub.String(),
	})
}

// CreateFromSerialization implements [chain.AccountFactory]. Bytes produced
// for another device are rejected.
func (f *AccountFactory) CreateFromSerialization(data []byte, deviceID string) (chain.Account, error) {
	if len(data) == 0 {
		return nil, chain.ErrMalformedAccount
	}

	var p accountPayload
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", chain.ErrMalformedAccount, err)
	}
	if p.Version != accountVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", chain.ErrMalformedAccount, p.Version)
	}
	if p.DeviceID != deviceID {
		return nil, chain.ErrAccountDeviceMismatch
	}
	if _, err := hdkeychain.NewKeyFromString(p.XPub); err != nil {
		return nil, fmt.Errorf("%w: %v", chain.ErrMalformedAccount, err)
	}

	return &Account{payload: p, raw: slices.Clone(data)}, nil
}

func deriveKey(seed []byte, params *chaincfg.Params, path ...uint32) (*hdkeychain.ExtendedKey, error) {
	key, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}

	for _, index := range path {
		if key, err = key.Derive(index); err != nil {
			return nil, fmt.Errorf("derive child %d: %w", index, err)
		}
	}
	return key, nil
}
