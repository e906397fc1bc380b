// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/clock"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
)

const defaultTimeSyncInterval = 10 * time.Minute

// TimeRefresher keeps a trusted clock in line with the backend time. The
// lockout countdown reads that clock, so moving the device clock forward
// does not shorten a lockout.
type TimeRefresher struct {
	adapter  adapter.TimeAdapter
	clock    *clock.Trusted
	interval time.Duration
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewTimeRefresher returns a refresher syncing clk every interval. A
// non-positive interval defaults to 10 minutes.
func NewTimeRefresher(a adapter.TimeAdapter, clk *clock.Trusted, interval time.Duration, m *metrics.Metrics, log *logger.Logger) *TimeRefresher {
	if interval <= 0 {
		interval = defaultTimeSyncInterval
	}
	return &TimeRefresher{adapter: a, clock: clk, interval: interval, metrics: m, logger: log}
}

// Run syncs once immediately and then on every tick until ctx is done.
func (r *TimeRefresher) Run(ctx context.Context) error {
	r.refresh(ctx)

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			r.refresh(ctx)
		}
	}
}

func (r *TimeRefresher) refresh(ctx context.Context) {
	log := r.logger.With().Str("func", "TimeRefresher.refresh").Logger()

	remote, err := r.adapter.ServerTime(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn().Err(err).Msg("trusted time unavailable, keeping previous offset")
		}
		return
	}

	offset := r.clock.Sync(remote)
	r.metrics.SetTimeOffset(offset)
	log.Debug().Dur("offset", offset).Msg("trusted time synced")
}
