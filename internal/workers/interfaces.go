// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/internal/chain"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Run blocks until ctx is cancelled. A non-nil error is fatal and stops
// the other workers.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// UserStates streams the user state. The first value is the current state.
type UserStates interface {
	StateChanges(ctx context.Context, disabledUpdates bool) <-chan models.UserState
}

// AccountSource returns the account the sync session is opened for.
type AccountSource interface {
	GetAccount(ctx context.Context) (chain.Account, error)
}

// SessionController opens and closes the sync session.
type SessionController interface {
	Open(ctx context.Context, account chain.Account) error
	CloseIfOpen() (bool, error)
	IsOpen() bool
}
