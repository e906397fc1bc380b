package hd

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
)

type apiKey struct {
	priv *btcec.PrivateKey
	wif  string
}

// EncodeAsPrivate implements [chain.Key]. The key is encoded as WIF.
func (k *apiKey) EncodeAsPrivate() []byte {
	return []byte(k.wif)
}

// PublicKey implements [chain.Key].
func (k *apiKey) PublicKey() []byte {
	return k.priv.PubKey().SerializeCompressed()
}

// KeyFactory derives API authentication keys on path m/1'/0.
type KeyFactory struct{}

// NewKeyFactory returns a [chain.KeyFactory].
func NewKeyFactory() *KeyFactory {
	return &KeyFactory{}
}

// CreateForAPIAuth implements [chain.KeyFactory].
func (f *KeyFactory) CreateForAPIAuth(phrase []byte) (chain.Key, error) {
	mnemonic := strings.TrimSpace(string(phrase))
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidPhrase
	}

	ext, err := deriveKey(bip39.NewSeed(mnemonic, ""), &chaincfg.MainNetParams,
		hdkeychain.HardenedKeyStart+1,
		0,
	)
	if err != nil {
		return nil, err
	}

	priv, err := ext.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("extract private key: %w", err)
	}

	wif, err := btcutil.NewWIF(priv, &chaincfg.MainNetParams, true)
	if err != nil {
		return nil, fmt.Errorf("encode wif: %w", err)
	}

	return &apiKey{priv: priv, wif: wif.String()}, nil
}

// CreateFromPrivateKeyString implements [chain.KeyFactory].
func (f *KeyFactory) CreateFromPrivateKeyString(encoded []byte) (chain.Key, error) {
	wif, err := btcutil.DecodeWIF(strings.TrimSpace(string(encoded)))
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}

	return &apiKey{priv: wif.PrivKey, wif: wif.String()}, nil
}
