// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract of the daemon runtime.
type Client interface {
	// Run starts the daemon and blocks until ctx is done or a component
	// fails.
	Run(ctx context.Context) error
}
