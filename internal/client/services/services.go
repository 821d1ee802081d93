// Package services wraps the API endpoint groups with the query cache and
// its invalidation rules. Queries read through the cache; mutations
// invalidate the resource families they affect, mirroring the dependency
// graph between screens: liking a book must be visible in every book
// listing, finishing an exchange in every exchange view, and so on.
//
// All operations are gated on the session: they refuse to run before the
// bootstrap has settled or without a token, the query-layer equivalent of
// "enabled = isReady && token present".
package services

import "errors"

// Gate is the session-readiness signal queries are enabled by.
type Gate interface {
	Ready() bool
	Token() string
}

var (
	// ErrSessionNotReady is returned when an operation runs before the
	// session bootstrap has settled. Guarded navigation normally prevents
	// this; hitting it indicates a sequencing bug in the caller.
	ErrSessionNotReady = errors.New("session not ready")

	// ErrNotSignedIn is returned for operations that need a token while the
	// session is anonymous.
	ErrNotSignedIn = errors.New("not signed in")
)

func gateEnabled(g Gate) error {
	if !g.Ready() {
		return ErrSessionNotReady
	}
	if g.Token() == "" {
		return ErrNotSignedIn
	}
	return nil
}
