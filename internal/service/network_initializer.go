package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// CandidateSelector picks the on-chain account to activate when a network
// reports several for the same key. ok is false when none is acceptable.
type CandidateSelector func(candidates []chain.AccountCandidate) (selected chain.AccountCandidate, ok bool)

// LowestBalanceFirst selects the candidate with the smallest balance. Ties
// keep the engine's order.
func LowestBalanceFirst(candidates []chain.AccountCandidate) (chain.AccountCandidate, bool) {
	return firstBy(candidates, func(a, b chain.AccountCandidate) int {
		return a.Balance.Cmp(b.Balance)
	})
}

// HighestBalanceFirst selects the candidate with the largest balance.
func HighestBalanceFirst(candidates []chain.AccountCandidate) (chain.AccountCandidate, bool) {
	return firstBy(candidates, func(a, b chain.AccountCandidate) int {
		return b.Balance.Cmp(a.Balance)
	})
}

func firstBy(candidates []chain.AccountCandidate, cmp func(a, b chain.AccountCandidate) int) (chain.AccountCandidate, bool) {
	if len(candidates) == 0 {
		return chain.AccountCandidate{}, false
	}
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, cmp)
	return sorted[0], true
}

// SelectorByName maps a configuration value to a selector.
func SelectorByName(name string) (CandidateSelector, error) {
	switch name {
	case "", "lowest_balance":
		return LowestBalanceFirst, nil
	case "highest_balance":
		return HighestBalanceFirst, nil
	default:
		return nil, fmt.Errorf("unknown candidate selection %q", name)
	}
}

// NetworkInitializer activates the account on networks that need it.
type NetworkInitializer struct {
	updater  AccountUpdater
	selector CandidateSelector
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewNetworkInitializer(updater AccountUpdater, selector CandidateSelector, m *metrics.Metrics, log *logger.Logger) *NetworkInitializer {
	if selector == nil {
		selector = LowestBalanceFirst
	}
	return &NetworkInitializer{
		updater:  updater,
		selector: selector,
		metrics:  m,
		logger:   log,
	}
}

// Initialize returns Initialized at once for networks the account is
// already active on. Otherwise it asks the engine to activate the account;
// a network that needs user action reports ActionNeeded so the caller can
// retry with createIfNeeded.
func (n *NetworkInitializer) Initialize(ctx context.Context, session chain.Session, network chain.Network, createIfNeeded bool) models.NetworkState {
	state := n.initialize(ctx, session, network, createIfNeeded)
	n.metrics.NetworkInitialized(network.UIDs, state.Kind.String())
	return state
}

func (n *NetworkInitializer) initialize(ctx context.Context, session chain.Session, network chain.Network, createIfNeeded bool) models.NetworkState {
	log := n.logger.With().
		Str("func", "NetworkInitializer.Initialize").
		Str("network", network.UIDs).
		Logger()

	if session.AccountIsInitialized(network) {
		return models.NetworkInitialized()
	}

	data, err := session.AccountInitialize(ctx, network, createIfNeeded)

	var multiple *chain.MultipleAccountsError
	switch {
	case err == nil:
	case errors.Is(err, chain.ErrAccountCantCreate):
		log.Info().Msg("account activation needs user action")
		return models.NetworkActionNeeded()
	case errors.As(err, &multiple):
		candidate, ok := n.selector(multiple.Candidates)
		if !ok {
			return models.NetworkError("Initialization failed: no usable account among multiple accounts")
		}
		log.Info().Int("candidates", len(multiple.Candidates)).Str("selected", candidate.ID).Msg("multiple accounts, activating selected")

		data, err = session.AccountInitializeUsing(ctx, network, candidate)
		if err != nil || len(data) == 0 {
			log.Error().Err(err).Msg("activation with selected account failed")
			return models.NetworkError("Initialization failed using one of multiple accounts")
		}
	default:
		log.Error().Err(err).Msg("account activation failed")
		return models.NetworkError(err.Error())
	}

	if len(data) == 0 {
		return models.NetworkError(chain.ErrAccountInitializeFailed.Error())
	}
	if err = n.updater.UpdateAccount(ctx, data); err != nil {
		log.Error().Err(err).Msg("failed to persist activated account")
		return models.NetworkError(err.Error())
	}

	log.Info().Msg("account activated")
	return models.NetworkInitialized()
}
