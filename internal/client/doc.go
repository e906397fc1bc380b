// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wallet daemon runtime.
//
// It wires storages, the chain engine, services, background workers, and
// the control API into a single process lifecycle.
package client
