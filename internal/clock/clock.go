// Package clock provides the time sources of the daemon. Lockout decisions
// read time through [TimeSource] so they can use a trusted backend offset
// and so tests can drive time by hand.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeSource is a wall time provider.
type TimeSource interface {
	Now() time.Time
}

// System reads the local wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Trusted is the local clock corrected by an offset learned from a trusted
// backend. Until the first sync it behaves like [System].
type Trusted struct {
	base   TimeSource
	offset atomic.Int64
	synced atomic.Bool
}

// NewTrusted returns a trusted clock on top of base.
func NewTrusted(base TimeSource) *Trusted {
	if base == nil {
		base = System{}
	}
	return &Trusted{base: base}
}

func (t *Trusted) Now() time.Time {
	return t.base.Now().Add(time.Duration(t.offset.Load()))
}

// Sync records the difference between the remote time and the local time
// observed when the response arrived.
func (t *Trusted) Sync(remote time.Time) time.Duration {
	offset := remote.Sub(t.base.Now())
	t.offset.Store(int64(offset))
	t.synced.Store(true)
	return offset
}

// Offset returns the current correction.
func (t *Trusted) Offset() time.Duration {
	return time.Duration(t.offset.Load())
}

// Synced reports whether at least one sync succeeded.
func (t *Trusted) Synced() bool {
	return t.synced.Load()
}

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
