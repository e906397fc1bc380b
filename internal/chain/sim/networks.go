// Package sim is an in-process chain engine. It keeps balances and
// transfers in memory and emits the same event sequence a real engine does,
// on a single engine-owned goroutine.
package sim

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
)

// NetworkSpec describes one simulated network.
type NetworkSpec struct {
	UIDs    string
	Name    string
	Code    string
	Mainnet bool
	Tokens  []chain.Currency
	// RequiresAccountInit marks networks where the account has to be
	// activated on-chain before wallets can be used.
	RequiresAccountInit bool
	// Candidates are pre-existing on-chain accounts for the key. More than
	// one makes AccountInitialize report an ambiguity.
	Candidates []chain.AccountCandidate
}

func (s NetworkSpec) native() chain.Currency {
	return chain.Currency{
		UIDs:     s.UIDs + ":__native__",
		Code:     s.Code,
		Name:     s.Name,
		Decimals: 8,
	}
}

func (s NetworkSpec) network() chain.Network {
	currencies := append([]chain.Currency{s.native()}, s.Tokens...)
	return chain.Network{
		UIDs:       s.UIDs,
		Name:       s.Name,
		IsMainnet:  s.Mainnet,
		Native:     s.native(),
		Currencies: currencies,
	}
}

// DefaultNetworks returns the networks the daemon simulates when none are
// configured.
func DefaultNetworks(mainnet bool) []NetworkSpec {
	suffix := "-testnet"
	if mainnet {
		suffix = "-mainnet"
	}

	return []NetworkSpec{
		{UIDs: "bitcoin" + suffix, Name: "Bitcoin", Code: "btc", Mainnet: mainnet},
		{
			UIDs: "ethereum" + suffix, Name: "Ethereum", Code: "eth", Mainnet: mainnet,
			Tokens: []chain.Currency{{
				UIDs:     "ethereum" + suffix + ":0xdac17f958d2ee523a2206206994597c13d831ec7",
				Code:     "usdt",
				Name:     "Tether",
				Decimals: 6,
			}},
		},
		{
			UIDs: "hedera" + suffix, Name: "Hedera", Code: "hbar", Mainnet: mainnet,
			RequiresAccountInit: true,
		},
	}
}

// Candidate is a shorthand for building account candidates.
func Candidate(id string, balance int64) chain.AccountCandidate {
	return chain.AccountCandidate{ID: id, Balance: decimal.NewFromInt(balance)}
}

// NativeID is the currency id of the network's native coin.
func (s NetworkSpec) NativeID() string {
	return s.native().UIDs
}

// SelectNetworks picks specs by native currency code, keeping the order of
// codes. Unknown codes are an error.
func SelectNetworks(specs []NetworkSpec, codes []string) ([]NetworkSpec, error) {
	byCode := make(map[string]NetworkSpec, len(specs))
	for _, s := range specs {
		byCode[strings.ToLower(s.Code)] = s
	}

	selected := make([]NetworkSpec, 0, len(codes))
	for _, code := range codes {
		s, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
		if !ok {
			return nil, fmt.Errorf("unknown network %q", code)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
