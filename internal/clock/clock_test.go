package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)

	assert.Equal(t, start, m.Now())
	m.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
}

func TestTrusted_AppliesOffset(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	local := NewManual(start)
	tr := NewTrusted(local)

	assert.False(t, tr.Synced())
	assert.Equal(t, start, tr.Now())

	offset := tr.Sync(start.Add(5 * time.Minute))
	assert.Equal(t, 5*time.Minute, offset)
	assert.True(t, tr.Synced())
	assert.Equal(t, start.Add(5*time.Minute), tr.Now())

	local.Advance(time.Second)
	assert.Equal(t, start.Add(5*time.Minute+time.Second), tr.Now())

	tr.Sync(start.Add(-time.Minute))
	assert.Equal(t, -time.Minute-time.Second, tr.Offset())
}

func TestTrusted_NilBaseUsesSystem(t *testing.T) {
	tr := NewTrusted(nil)
	assert.WithinDuration(t, time.Now(), tr.Now(), time.Second)
}
