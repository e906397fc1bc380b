// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stream provides the small set of reactive primitives the wallet
// engine is built on: a last-value cell with broadcast, and channel
// operators for throttling, deduplication and fan-in.
//
// Every subscriber channel is conflated: a slow reader never blocks the
// writer, it simply observes the most recent value when it catches up.
package stream

import (
	"context"
	"sync"
)

// Cell holds a single current value and broadcasts every update to its
// subscribers. New subscribers immediately receive the current value.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[chan T]struct{}
}

// NewCell creates a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[chan T]struct{}),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the current value and publishes it.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.publish(v)
}

// Update applies fn to the current value under the cell lock, stores and
// publishes the result. fn must not call back into the cell.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = fn(c.value)
	c.publish(c.value)
	return c.value
}

// Subscribe returns a channel that receives the current value and then
// every later update. The channel is closed when ctx is done.
func (c *Cell[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	c.mu.Lock()
	ch <- c.value
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subs, ch)
		close(ch)
		c.mu.Unlock()
	}()

	return ch
}

// Subscribers returns the number of live subscriptions.
func (c *Cell[T]) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// publish must be called with c.mu held.
func (c *Cell[T]) publish(v T) {
	for ch := range c.subs {
		select {
		case ch <- v:
		default:
			// drop the stale value the reader has not consumed yet
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}

// Signal is a version counter used to wake dependent streams.
type Signal struct {
	cell *Cell[uint64]
}

// NewSignal creates a Signal at version zero.
func NewSignal() *Signal {
	return &Signal{cell: NewCell[uint64](0)}
}

// Notify bumps the version and wakes all subscribers.
func (s *Signal) Notify() {
	s.cell.Update(func(v uint64) uint64 { return v + 1 })
}

// Version returns the current version.
func (s *Signal) Version() uint64 {
	return s.cell.Get()
}

// Subscribe returns a conflated stream of versions, starting with the
// current one.
func (s *Signal) Subscribe(ctx context.Context) <-chan uint64 {
	return s.cell.Subscribe(ctx)
}
