package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountCantCreate is returned by AccountInitialize when the
	// account cannot be created on-chain without user action (for example
	// funding a fee payer).
	ErrAccountCantCreate = errors.New("account cannot be created without user action")

	// ErrAccountInitializeFailed is returned when activation with a
	// selected candidate produced no serialization.
	ErrAccountInitializeFailed = errors.New("account initialization failed")

	// ErrAccountDeviceMismatch is returned by CreateFromSerialization when
	// the bytes were produced for a different device.
	ErrAccountDeviceMismatch = errors.New("account serialized for a different device")

	// ErrMalformedAccount is returned when account bytes cannot be decoded.
	ErrMalformedAccount = errors.New("malformed account serialization")

	// ErrUnknownNetwork is returned when a network uids is not known to the
	// session.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrSessionWiped is returned by calls on a wiped session.
	ErrSessionWiped = errors.New("session wiped")
)

// MultipleAccountsError is returned by AccountInitialize on networks where
// several on-chain accounts already exist for the same key.
type MultipleAccountsError struct {
	Candidates []AccountCandidate
}

func (e *MultipleAccountsError) Error() string {
	return fmt.Sprintf("%d on-chain accounts match the key", len(e.Candidates))
}
