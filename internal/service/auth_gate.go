package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

// AuthGate is the Authenticator of the daemon. A blocked Authenticate call
// shows up as a pending prompt that a control API client resolves.
type AuthGate struct {
	legacy store.LegacyStore

	mu      sync.Mutex
	pending *authPrompt
}

type authPrompt struct {
	done     chan struct{}
	approved bool
}

func NewAuthGate(legacy store.LegacyStore) *AuthGate {
	return &AuthGate{legacy: legacy}
}

// Authenticate blocks until Resolve is called or ctx is done. Concurrent
// callers share one prompt.
func (g *AuthGate) Authenticate(ctx context.Context) error {
	g.mu.Lock()
	if g.pending == nil {
		g.pending = &authPrompt{done: make(chan struct{})}
	}
	prompt := g.pending
	g.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-prompt.done:
	}

	if !prompt.approved {
		return ErrAuthDenied
	}
	return nil
}

// Pending reports whether a prompt waits for an answer.
func (g *AuthGate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending != nil
}

// Resolve answers the pending prompt. Approval unlocks the protected
// legacy keys before waiters are released.
func (g *AuthGate) Resolve(approved bool) error {
	g.mu.Lock()
	prompt := g.pending
	g.pending = nil
	g.mu.Unlock()

	if prompt == nil {
		return ErrNoPendingPrompt
	}

	if approved && g.legacy != nil {
		g.legacy.MarkAuthenticated()
	}
	prompt.approved = approved
	close(prompt.done)
	return nil
}

// LegacyMetadataProvider reads the wallet creation date an earlier release
// recorded next to its key store.
type LegacyMetadataProvider struct {
	legacy store.LegacyStore
}

func NewLegacyMetadataProvider(legacy store.LegacyStore) *LegacyMetadataProvider {
	return &LegacyMetadataProvider{legacy: legacy}
}

func (p *LegacyMetadataProvider) WalletCreationDate(ctx context.Context) (time.Time, bool, error) {
	if p.legacy == nil || !p.legacy.Exists(ctx) {
		return time.Time{}, false, nil
	}

	raw, err := p.legacy.GetString(ctx, legacyKeyCreationTime)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || secs <= 0 {
		return time.Time{}, false, nil
	}
	return time.Unix(secs, 0).UTC(), true, nil
}
