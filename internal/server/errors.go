// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoControlAPI = errors.New("control API handler or address is not configured")
)
