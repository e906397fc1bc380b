// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSecureValue = `
		SELECT value
		FROM secure_values
		WHERE key = ?;`

	putSecureValue = `
		INSERT INTO secure_values (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	deleteSecureValue = `
		DELETE FROM secure_values
		WHERE key = ?;`

	getStoreMeta = `
		SELECT value
		FROM store_meta
		WHERE name = ?;`

	putStoreMeta = `
		INSERT INTO store_meta (name, value)
		VALUES (?, ?)
		ON CONFLICT (name) DO NOTHING;`
)

const (
	walletSelectionTable = "wallet_selection"

	metaSalt   = "salt"
	metaCanary = "canary"
	canaryText = "go-wallet-keeper"
)
