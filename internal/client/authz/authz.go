// Package authz derives the current user's role set from their profile and
// answers role-membership queries. Role checks never fail: before the state
// is ready, or when anything goes wrong, they simply answer "no role" —
// callers that must tell "not ready" apart from "ready, no role" check
// State.IsReady themselves.
package authz

import "context"

// RoleAdmin gates the admin back office.
const RoleAdmin = "admin"

// Session is the readiness/token slice of the session controller.
type Session interface {
	Ready() bool
	Token() string
}

// ProfileSource yields the current user's profile; the concrete
// implementation reads through the query cache, so repeated resolution does
// not hammer the server.
type ProfileSource interface {
	Roles(ctx context.Context) ([]string, error)
}

// State is the resolved authorization snapshot. IsReady is true iff the
// session is ready and the profile query has settled (success or error), or
// trivially when no token exists — anonymous sessions hold zero roles and
// are ready immediately.
type State struct {
	Roles   map[string]struct{}
	IsReady bool
}

// Has reports membership in the resolved role set.
func (s State) Has(role string) bool {
	_, ok := s.Roles[role]
	return ok
}

// HasAny reports whether at least one of the given roles is held.
func (s State) HasAny(roles ...string) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Resolver computes State on demand. It holds no state of its own; the
// profile cache underneath provides the memoization.
type Resolver struct {
	session  Session
	profiles ProfileSource
}

func NewResolver(session Session, profiles ProfileSource) *Resolver {
	return &Resolver{session: session, profiles: profiles}
}

// Resolve returns the current authorization snapshot. The profile query only
// fires for ready sessions holding a token, so anonymous sessions never cause
// a request here.
func (r *Resolver) Resolve(ctx context.Context) State {
	if !r.session.Ready() {
		return State{Roles: map[string]struct{}{}}
	}
	if r.session.Token() == "" {
		return State{Roles: map[string]struct{}{}, IsReady: true}
	}

	roles, err := r.profiles.Roles(ctx)
	state := State{Roles: make(map[string]struct{}, len(roles)), IsReady: true}
	if err != nil {
		// Settled with an error still counts as ready — with zero roles.
		return state
	}
	for _, role := range roles {
		state.Roles[role] = struct{}{}
	}
	return state
}

// HasRole answers a single membership query; false when not ready.
func (r *Resolver) HasRole(ctx context.Context, role string) bool {
	return r.Resolve(ctx).Has(role)
}

// HasAnyRole answers a disjunction of membership queries; false when not ready.
func (r *Resolver) HasAnyRole(ctx context.Context, roles ...string) bool {
	return r.Resolve(ctx).HasAny(roles...)
}

// Require runs fn only when at least one of the required roles is held;
// otherwise it runs fallback, or does nothing when fallback is nil.
func (r *Resolver) Require(ctx context.Context, roles []string, fn func() error, fallback func() error) error {
	if r.HasAnyRole(ctx, roles...) {
		return fn()
	}
	if fallback != nil {
		return fallback()
	}
	return nil
}
