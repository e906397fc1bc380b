// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sim

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/internal/chain/hd"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// Engine creates simulated sessions.
type Engine struct {
	networks []NetworkSpec
	logger   *logger.Logger
}

var _ chain.Engine = (*Engine)(nil)

// NewEngine returns an engine simulating the given networks. Networks whose
// mainnet flag differs from the session are skipped.
func NewEngine(networks []NetworkSpec, log *logger.Logger) *Engine {
	return &Engine{networks: networks, logger: log}
}

// CreateSession implements [chain.Engine]. The event worker runs until the
// session is wiped or ctx is done.
func (e *Engine) CreateSession(ctx context.Context, account chain.Account, isMainnet bool, storagePath string, listener chain.Listener) (chain.Session, error) {
	dir := filepath.Clean(storagePath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	s := &Session{
		dir:         dir,
		account:     account,
		listener:    listener,
		mailbox:     newMailbox(),
		specs:       make(map[string]NetworkSpec),
		managers:    make(map[string]*manager),
		initialized: make(map[string]bool),
		done:        make(chan struct{}),
		logger:      e.logger,
	}
	if acct, ok := account.(*hd.Account); ok {
		s.hdAccount = acct
	}

	for _, spec := range e.networks {
		if spec.Mainnet != isMainnet {
			continue
		}
		s.order = append(s.order, spec.UIDs)
		s.specs[spec.UIDs] = spec
	}

	go s.run(ctx)

	e.logger.Debug().
		Str("func", "sim.Engine.CreateSession").
		Str("dir", dir).
		Int("networks", len(s.order)).
		Msg("simulated session created")

	return s, nil
}
