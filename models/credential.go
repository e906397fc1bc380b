package models

import "time"

// Credential is the key material produced by a successful account setup.
type Credential struct {
	Phrase       []byte
	AuthKey      []byte
	Account      []byte
	CreationTime time.Time
}

// JWT is a backend token cached together with its expiry.
type JWT struct {
	Token     string
	ExpiresAt time.Time
}

// LockoutWindow holds the failed PIN attempts the lockout policy works on.
type LockoutWindow struct {
	FailCount     int
	FailTimestamp time.Time
}

// Active reports whether a lockout was started and not yet cleared.
func (w LockoutWindow) Active() bool {
	return !w.FailTimestamp.IsZero()
}
