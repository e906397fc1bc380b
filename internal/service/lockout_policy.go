package service

import (
	"math"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// MaxAttempts is the number of wrong PINs accepted before a lockout starts.
const MaxAttempts = 3

// maxLockoutExponent keeps the computed window inside time.Duration.
const maxLockoutExponent = 10

// LockoutPolicy computes PIN lockout windows. It has no state and no side
// effects.
type LockoutPolicy struct {
	// Base is the growth factor of the window, the PIN length by default.
	Base int
	// MaxAttempts is the failure count at which lockout starts.
	MaxAttempts int
	// Unit is the window length at the first lockout divided by Base.
	Unit time.Duration
}

// DefaultLockoutPolicy returns the policy used by the wallet: three wrong
// PINs disable entry for six minutes, every further one multiplies the
// window by six.
func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{Base: models.PINLength, MaxAttempts: MaxAttempts, Unit: time.Minute}
}

// DisabledUntil returns the end of the lockout window. ok is false when the
// window is not active.
func (p LockoutPolicy) DisabledUntil(w models.LockoutWindow) (until time.Time, ok bool) {
	if w.FailCount < p.MaxAttempts || !w.Active() {
		return time.Time{}, false
	}

	exp := min(w.FailCount-p.MaxAttempts+1, maxLockoutExponent)
	window := time.Duration(math.Pow(float64(p.Base), float64(exp))) * p.Unit
	return w.FailTimestamp.Add(window), true
}

// SecondsRemaining returns the whole seconds left in the window at now, or
// zero when entry is allowed.
func (p LockoutPolicy) SecondsRemaining(w models.LockoutWindow, now time.Time) int64 {
	until, ok := p.DisabledUntil(w)
	if !ok {
		return 0
	}
	return max(0, int64(until.Sub(now)/time.Second))
}
