// Package http implements the local control API of the wallet daemon.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, metrics, and control-token checks
// are handled in this package before requests are delegated to the
// authentication state machine, the sync session, and the wallet
// selection.
package http
