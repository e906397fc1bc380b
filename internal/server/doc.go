// Package server runs the daemon's control API.
//
// It owns the HTTP server lifecycle: startup, serving until the daemon
// context ends, and graceful shutdown that lets in-flight requests finish.
package server
