// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strconv"
)

// UserStateKind enumerates the mutually exclusive states of the local user.
type UserStateKind int

const (
	UserStateUninitialized UserStateKind = iota
	UserStateKeyStoreInvalid
	UserStateDisabled
	UserStateLocked
	UserStateEnabled
)

var userStateNames = map[UserStateKind]string{
	UserStateUninitialized:   "uninitialized",
	UserStateKeyStoreInvalid: "key_store_invalid",
	UserStateDisabled:        "disabled",
	UserStateLocked:          "locked",
	UserStateEnabled:         "enabled",
}

func (k UserStateKind) String() string {
	if name, ok := userStateNames[k]; ok {
		return name
	}
	return "unknown"
}

// InvalidReason tells the user how an invalid key store can be recovered.
type InvalidReason int

const (
	InvalidReasonNone InvalidReason = iota
	// InvalidReasonWipe means the wallet data must be wiped and restored
	// from the recovery phrase.
	InvalidReasonWipe
	// InvalidReasonUninstall means the platform cannot recover signing
	// capability without reinstalling the application.
	InvalidReasonUninstall
)

func (r InvalidReason) String() string {
	switch r {
	case InvalidReasonWipe:
		return "wipe"
	case InvalidReasonUninstall:
		return "uninstall"
	default:
		return ""
	}
}

// UserState is a closed variant computed from the stored credential, the
// platform key signal and the lockout window. It is comparable so streams
// can drop consecutive duplicates with ==.
type UserState struct {
	Kind UserStateKind
	// Reason is set only for UserStateKeyStoreInvalid.
	Reason InvalidReason
	// SecondsRemaining is set only for UserStateDisabled.
	SecondsRemaining int64
}

func Uninitialized() UserState { return UserState{Kind: UserStateUninitialized} }

func KeyStoreInvalid(reason InvalidReason) UserState {
	return UserState{Kind: UserStateKeyStoreInvalid, Reason: reason}
}

func Disabled(seconds int64) UserState {
	return UserState{Kind: UserStateDisabled, SecondsRemaining: seconds}
}

func Locked() UserState  { return UserState{Kind: UserStateLocked} }
func Enabled() UserState { return UserState{Kind: UserStateEnabled} }

func (s UserState) String() string {
	switch s.Kind {
	case UserStateKeyStoreInvalid:
		return s.Kind.String() + "(" + s.Reason.String() + ")"
	case UserStateDisabled:
		return s.Kind.String() + "(" + strconv.FormatInt(s.SecondsRemaining, 10) + "s)"
	default:
		return s.Kind.String()
	}
}

type userStateJSON struct {
	State            string `json:"state"`
	Reason           string `json:"reason,omitempty"`
	SecondsRemaining int64  `json:"seconds_remaining,omitempty"`
}

// MarshalJSON renders the state the way the control API exposes it.
func (s UserState) MarshalJSON() ([]byte, error) {
	return json.Marshal(userStateJSON{
		State:            s.Kind.String(),
		Reason:           s.Reason.String(),
		SecondsRemaining: s.SecondsRemaining,
	})
}
