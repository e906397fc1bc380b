package models

// NetworkStateKind enumerates per-network initialization states.
type NetworkStateKind int

const (
	NetworkStateLoading NetworkStateKind = iota
	NetworkStateInitialized
	NetworkStateActionNeeded
	NetworkStateError
)

func (k NetworkStateKind) String() string {
	switch k {
	case NetworkStateInitialized:
		return "initialized"
	case NetworkStateActionNeeded:
		return "action_needed"
	case NetworkStateError:
		return "error"
	default:
		return "loading"
	}
}

// NetworkState is the state of one-time account activation on a network.
type NetworkState struct {
	Kind   NetworkStateKind `json:"kind"`
	Reason string           `json:"reason,omitempty"`
}

func NetworkInitialized() NetworkState  { return NetworkState{Kind: NetworkStateInitialized} }
func NetworkLoading() NetworkState      { return NetworkState{Kind: NetworkStateLoading} }
func NetworkActionNeeded() NetworkState { return NetworkState{Kind: NetworkStateActionNeeded} }

func NetworkError(reason string) NetworkState {
	return NetworkState{Kind: NetworkStateError, Reason: reason}
}

// WalletStateKind is the UI-facing projection of NetworkStateKind.
type WalletStateKind string

const (
	WalletStateInitialized     WalletStateKind = "initialized"
	WalletStateLoading         WalletStateKind = "loading"
	WalletStateWaitingOnAction WalletStateKind = "waiting_on_action"
	WalletStateError           WalletStateKind = "error"
)

// WalletState describes whether a wallet can be used yet.
type WalletState struct {
	Kind   WalletStateKind `json:"state"`
	Reason string          `json:"reason,omitempty"`
}

// WalletStateFrom maps a network state to the wallet state shown to the user.
func WalletStateFrom(s NetworkState) WalletState {
	switch s.Kind {
	case NetworkStateInitialized:
		return WalletState{Kind: WalletStateInitialized}
	case NetworkStateActionNeeded:
		return WalletState{Kind: WalletStateWaitingOnAction}
	case NetworkStateError:
		return WalletState{Kind: WalletStateError, Reason: s.Reason}
	default:
		return WalletState{Kind: WalletStateLoading}
	}
}
