// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound clients of the wallet daemon.
//
// The package currently ships the trusted time client ([TimeAdapter]) used
// to correct the clock lockout decisions rely on.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/time_adapter_mock.go -package=mock

// TimeAdapter reads the current time from a trusted backend.
type TimeAdapter interface {
	// ServerTime returns the backend time, corrected by half the round trip.
	ServerTime(ctx context.Context) (time.Time, error)
}
