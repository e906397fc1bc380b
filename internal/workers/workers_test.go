// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// spyWorker считает запуски и ждёт отмены контекста.
type spyWorker struct {
	runs    atomic.Int32
	stopped atomic.Bool
}

func (s *spyWorker) Run(ctx context.Context) error {
	s.runs.Add(1)
	<-ctx.Done()
	s.stopped.Store(true)
	return nil
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &spyWorker{}, &spyWorker{}, &spyWorker{}
	ws := NewWorkers(w1, w2, nil, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	for i, w := range []*spyWorker{w1, w2, w3} {
		assert.True(t, w.stopped.Load(), "worker[%d] must observe cancellation", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// пустой набор сразу возвращается
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

func TestWorkers_Run_Concurrent(t *testing.T) {
	var mu sync.Mutex
	started := 0
	barrier := make(chan struct{})

	// каждый воркер ждёт, пока стартуют оба
	worker := funcWorker(func(context.Context) error {
		mu.Lock()
		started++
		if started == 2 {
			close(barrier)
		}
		mu.Unlock()
		<-barrier
		return nil
	})

	done := make(chan struct{})
	go func() {
		_ = NewWorkers(worker, worker).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not run side by side")
	}
}

// ── Ошибка воркера ──────────────────────────────────────────────────────────

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	errFatal := errors.New("fatal")
	long := &spyWorker{}
	failing := funcWorker(func(context.Context) error {
		return errFatal
	})

	done := make(chan error, 1)
	go func() { done <- NewWorkers(long, failing).Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errFatal)
	case <-time.After(time.Second):
		t.Fatal("error did not stop the other workers")
	}
	// остальные воркеры получают отмену контекста
	assert.True(t, long.stopped.Load())
}
