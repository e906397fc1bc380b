package server

import "context"

// Server defines the lifecycle contract of the control API server.
//
// Implementations block in [Run] until ctx is cancelled or the listener
// fails, and then shut down gracefully.
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
