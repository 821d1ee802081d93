// Package token holds the in-memory access token shared by the HTTP clients
// and the session controller.
//
// The store is deliberately dumb: it keeps the last value written and tells
// subscribers about every write. Clearing caches, redirecting the user and
// other consequences of losing a token belong to the session controller,
// which observes the store like everyone else.
package token

import "sync"

// Store is a process-wide holder of the current access token.
//
// The token is never persisted; a fresh process always starts empty until the
// session bootstrap runs. An empty string means "no token".
//
// Notification contract: every call to Set notifies every subscriber, in
// subscription order, with the exact value written — including writes that
// repeat the current value. Listeners must be idempotent to repeated values.
type Store struct {
	mu        sync.Mutex
	token     string
	nextID    int
	listeners []subscription
}

type subscription struct {
	id int
	fn func(token string)
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the held token and synchronously notifies all subscribers.
// The write is last-write-wins; no ordering is imposed between concurrent
// callers beyond the notification of whichever value lands last.
func (s *Store) Set(token string) {
	s.mu.Lock()
	s.token = token
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	// Listeners run outside the lock so they may call back into the store.
	for _, l := range listeners {
		l.fn(token)
	}
}

// Get returns the currently held token, or "" when no session is active.
func (s *Store) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Subscribe registers a listener invoked on every Set call. The returned
// function removes the listener; calling it more than once is safe.
func (s *Store) Subscribe(fn func(token string)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
