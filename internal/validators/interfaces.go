// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks control API request bodies before they reach
// the services: PIN shape, recovery phrase shape, sync modes and currency
// id lists. Deeper rules (checksum of a phrase, lockout) stay in the
// services.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked; otherwise every field the value carries is.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
