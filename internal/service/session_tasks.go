package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
)

// sessionTasks runs background work bound to one open sync session.
// After Stop no new task starts and Stop returns once the running ones
// finished.
type sessionTasks struct {
	ctx     context.Context
	cancel  context.CancelFunc
	metrics *metrics.Metrics
	logger  *logger.Logger

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func newSessionTasks(parent context.Context, m *metrics.Metrics, log *logger.Logger) *sessionTasks {
	ctx, cancel := context.WithCancel(parent)
	return &sessionTasks{ctx: ctx, cancel: cancel, metrics: m, logger: log}
}

// Context is cancelled when the session closes.
func (t *sessionTasks) Context() context.Context {
	return t.ctx
}

// Go starts fn unless the session is closing. A panic inside fn is logged
// and counted instead of crashing the daemon.
func (t *sessionTasks) Go(name string, fn func(ctx context.Context)) {
	t.mu.Lock()
	if t.stopped || t.ctx.Err() != nil {
		t.mu.Unlock()
		return
	}
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				t.metrics.HandlerPanic()
				t.logger.Error().
					Str("func", "sessionTasks.Go").
					Str("task", name).
					Interface("panic", r).
					Msg("session task panicked")
			}
		}()
		fn(t.ctx)
	}()
}

func (t *sessionTasks) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()

	t.cancel()
	t.wg.Wait()
}
