// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the control API. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidControlToken is returned when the bearer token does not
	// match the configured control token.
	ErrInvalidControlToken = errors.New("invalid control token")

	// ErrInvalidWalletID is returned when the {id} path segment cannot be
	// unescaped.
	ErrInvalidWalletID = errors.New("invalid wallet id")
)
