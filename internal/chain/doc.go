// Package chain declares the capability surface of the multi-network chain
// engine the wallet keeper drives: accounts, keys, sessions, wallet
// managers and the events a session pushes to its listener.
//
// The engine itself is external. Reference implementations live in the hd
// (accounts and keys) and sim (in-process engine) subpackages.
package chain
