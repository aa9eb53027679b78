// Package store provides a single-writer, action-driven state container.
//
// A reducer computes the next state from the current state and an action, and may
// return follow-up actions. Dispatch commits the new state, dispatches every
// follow-up in order (each completing its own notifications), and only then
// notifies the listeners of the original action. Listener notifications therefore
// follow call-stack order: the innermost follow-up notifies first.
//
// The store is driven from one goroutine. GetState may be called from anywhere;
// it returns an isolated copy so callers cannot bypass Dispatch.
package store

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Reducer computes the next state and zero or more follow-up actions
// Must not retain or mutate memory reachable from the state it receives
type Reducer[S, A any] func(state S, action A) (S, []A)

// Listener is invoked with no arguments after every dispatch
type Listener func()

// Tracer observes every applied action with its nesting depth (0 = top level)
type Tracer[A any] func(action A, depth int)

// Option configures a Store
type Option[S, A any] func(*Store[S, A])

// WithTracer installs an action tracer
func WithTracer[S, A any](t Tracer[A]) Option[S, A] {
	return func(s *Store[S, A]) {
		s.tracer = t
	}
}

type subscription struct {
	fn      Listener
	removed atomic.Bool
}

// Store holds state of type S mutated by actions of type A
type Store[S, A any] struct {
	mu        sync.RWMutex
	state     S
	reducer   Reducer[S, A]
	clone     func(S) S
	listeners []*subscription
	tracer    Tracer[A]
	depth     int
}

// New creates a store; clone must return a deep copy of its argument
func New[S, A any](reducer Reducer[S, A], initial S, clone func(S) S, opts ...Option[S, A]) *Store[S, A] {
	s := &Store[S, A]{
		state:     clone(initial),
		reducer:   reducer,
		clone:     clone,
		listeners: make([]*subscription, 0, 4),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetState returns an isolated copy of the current state
func (s *Store[S, A]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.state)
}

// Dispatch applies the reducer, drains follow-ups, then notifies listeners
// Reentrant on the dispatching goroutine: listeners may dispatch
func (s *Store[S, A]) Dispatch(a A) {
	depth, followUps := s.apply(a)

	defer func() {
		s.mu.Lock()
		s.depth--
		s.mu.Unlock()
	}()

	if s.tracer != nil {
		s.tracer(a, depth)
	}

	for _, f := range followUps {
		s.Dispatch(f)
	}

	s.notify()
}

// apply commits the reducer result and enters one dispatch level
// A panicking reducer leaves state, depth and the lock untouched
func (s *Store[S, A]) apply(a A) (depth int, followUps []A) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, followUps := s.reducer(s.state, a)
	s.state = next
	depth = s.depth
	s.depth++
	return depth, followUps
}

// notify calls a snapshot of listeners in subscription order
// Listeners removed mid-notification are skipped
func (s *Store[S, A]) notify() {
	s.mu.RLock()
	subs := slices.Clone(s.listeners)
	s.mu.RUnlock()

	for _, sub := range subs {
		if sub.removed.Load() {
			continue
		}
		sub.fn()
	}
}

// Subscribe registers a listener and returns its unsubscribe function
// Unsubscribe removes exactly this registration; calling it again is a no-op
func (s *Store[S, A]) Subscribe(fn Listener) (unsubscribe func()) {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()

	return func() {
		if sub.removed.Swap(true) {
			return
		}
		s.mu.Lock()
		s.listeners = slices.DeleteFunc(s.listeners, func(x *subscription) bool {
			return x == sub
		})
		s.mu.Unlock()
	}
}

// ListenerCount returns the number of active listeners
func (s *Store[S, A]) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Depth returns the number of dispatches in progress (0 when idle)
func (s *Store[S, A]) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.depth
}
