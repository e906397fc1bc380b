package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

func TestLockoutPolicy_DisabledUntil(t *testing.T) {
	p := DefaultLockoutPolicy()
	start := testStart

	tests := []struct {
		name   string
		window models.LockoutWindow
		want   time.Duration
		active bool
	}{
		{name: "below max attempts", window: models.LockoutWindow{FailCount: 2, FailTimestamp: start}},
		{name: "no timestamp", window: models.LockoutWindow{FailCount: 5}},
		{name: "three failures", window: models.LockoutWindow{FailCount: 3, FailTimestamp: start}, want: 6 * time.Minute, active: true},
		{name: "four failures", window: models.LockoutWindow{FailCount: 4, FailTimestamp: start}, want: 36 * time.Minute, active: true},
		{name: "five failures", window: models.LockoutWindow{FailCount: 5, FailTimestamp: start}, want: 216 * time.Minute, active: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			until, ok := p.DisabledUntil(tt.window)
			assert.Equal(t, tt.active, ok)
			if tt.active {
				assert.Equal(t, start.Add(tt.want), until)
			}
		})
	}
}

func TestLockoutPolicy_WindowGrows(t *testing.T) {
	p := DefaultLockoutPolicy()

	var prev time.Time
	for count := MaxAttempts; count <= 12; count++ {
		until, ok := p.DisabledUntil(models.LockoutWindow{FailCount: count, FailTimestamp: testStart})
		assert.True(t, ok)
		assert.True(t, until.After(prev), "окно должно расти: count=%d", count)
		prev = until
	}
}

func TestLockoutPolicy_WindowIsCapped(t *testing.T) {
	p := DefaultLockoutPolicy()

	capped, ok := p.DisabledUntil(models.LockoutWindow{FailCount: 1000, FailTimestamp: testStart})
	assert.True(t, ok)
	assert.True(t, capped.After(testStart), "переполнения быть не должно")

	at12, _ := p.DisabledUntil(models.LockoutWindow{FailCount: 12, FailTimestamp: testStart})
	assert.Equal(t, at12, capped)
}

func TestLockoutPolicy_SecondsRemaining(t *testing.T) {
	p := DefaultLockoutPolicy()
	w := models.LockoutWindow{FailCount: 3, FailTimestamp: testStart}

	assert.Equal(t, int64(360), p.SecondsRemaining(w, testStart))
	assert.Equal(t, int64(300), p.SecondsRemaining(w, testStart.Add(time.Minute)))
	assert.Equal(t, int64(0), p.SecondsRemaining(w, testStart.Add(6*time.Minute)))
	assert.Equal(t, int64(0), p.SecondsRemaining(w, testStart.Add(time.Hour)))
	assert.Equal(t, int64(0), p.SecondsRemaining(models.LockoutWindow{FailCount: 2}, testStart))
}
