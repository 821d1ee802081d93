// Package guard implements the navigation gates: Protected, Onboarding and
// Admin. Each guard is a pure function of a Context snapshot; the CLI's
// dispatcher plays the role a router plays in a browser, evaluating guards
// before a command runs and acting on the decision.
//
// Ordering matters: Protected must be evaluated before Onboarding and Admin,
// since both of the latter assume a resolved token. Chain enforces this by
// taking guards in evaluation order and stopping at the first non-Allow.
package guard

// Well-known navigation targets.
const (
	RouteLogin      = "/login"
	RouteHome       = "/home"
	RouteOnboarding = "/onboarding"
)

// Context is the immutable snapshot guards decide over.
type Context struct {
	// SessionReady is the session controller's bootstrap-completed latch.
	SessionReady bool
	// Token is the current access token; "" means anonymous.
	Token string

	// ProfileKnown is true once the profile query has settled for this
	// session, making Onboarded trustworthy.
	ProfileKnown bool
	Onboarded    bool

	// AuthzReady and IsAdmin come from the authorization resolver.
	AuthzReady bool
	IsAdmin    bool
}

// Action is what the navigation layer should do.
type Action int

const (
	// Allow renders the requested route.
	Allow Action = iota
	// Pending means required state is not resolved yet: show a loading
	// indicator, do not redirect — redirecting now would flicker for users
	// whose session restores a moment later.
	Pending
	// Redirect sends the user to Target; From preserves the attempted
	// location for a post-login or post-grant return.
	Redirect
)

// Decision is a guard's verdict.
type Decision struct {
	Action Action
	Target string
	From   string
}

func allow() Decision   { return Decision{Action: Allow} }
func pending() Decision { return Decision{Action: Pending} }

func redirect(target, from string) Decision {
	return Decision{Action: Redirect, Target: target, From: from}
}

// Guard gates one route given a context snapshot and the attempted location.
type Guard func(gc Context, from string) Decision

// Protected requires an authenticated session: anonymous and ready redirects
// to login (carrying the attempted location), not yet ready holds.
func Protected(gc Context, from string) Decision {
	if !gc.SessionReady {
		return pending()
	}
	if gc.Token == "" {
		return redirect(RouteLogin, from)
	}
	return allow()
}

// Onboarding is a two-way gate: users who have not completed onboarding are
// forced onto the onboarding screen from anywhere else, and onboarded users
// visiting the onboarding screen are sent home. A profile that failed to load
// counts as not onboarded, mirroring the server's view of a fresh account.
func Onboarding(gc Context, from string) Decision {
	if !gc.ProfileKnown {
		return pending()
	}
	if !gc.Onboarded && from != RouteOnboarding {
		return redirect(RouteOnboarding, from)
	}
	if gc.Onboarded && from == RouteOnboarding {
		return redirect(RouteHome, from)
	}
	return allow()
}

// Admin requires the admin role; non-admins land on the default
// authenticated screen with the original location preserved.
func Admin(gc Context, from string) Decision {
	if !gc.AuthzReady {
		return pending()
	}
	if !gc.IsAdmin {
		return redirect(RouteHome, from)
	}
	return allow()
}

// Chain evaluates guards in order and returns the first non-Allow decision.
func Chain(gc Context, from string, guards ...Guard) Decision {
	for _, g := range guards {
		if d := g(gc, from); d.Action != Allow {
			return d
		}
	}
	return allow()
}
