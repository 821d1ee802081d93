package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtected(t *testing.T) {
	tests := []struct {
		name string
		gc   Context
		from string
		want Decision
	}{
		{
			name: "not ready holds without redirect",
			gc:   Context{SessionReady: false},
			from: "/books",
			want: Decision{Action: Pending},
		},
		{
			name: "ready anonymous redirects to login preserving location",
			gc:   Context{SessionReady: true, Token: ""},
			from: "/books",
			want: Decision{Action: Redirect, Target: RouteLogin, From: "/books"},
		},
		{
			name: "ready authenticated allows",
			gc:   Context{SessionReady: true, Token: "tok"},
			from: "/books",
			want: Decision{Action: Allow},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Protected(tc.gc, tc.from))
		})
	}
}

func TestOnboarding_TwoWayGate(t *testing.T) {
	tests := []struct {
		name string
		gc   Context
		from string
		want Decision
	}{
		{
			name: "profile pending holds",
			gc:   Context{ProfileKnown: false},
			from: "/home",
			want: Decision{Action: Pending},
		},
		{
			name: "not onboarded forced onto onboarding from elsewhere",
			gc:   Context{ProfileKnown: true, Onboarded: false},
			from: "/home",
			want: Decision{Action: Redirect, Target: RouteOnboarding, From: "/home"},
		},
		{
			name: "not onboarded may stay on onboarding",
			gc:   Context{ProfileKnown: true, Onboarded: false},
			from: RouteOnboarding,
			want: Decision{Action: Allow},
		},
		{
			name: "onboarded revisiting onboarding sent home",
			gc:   Context{ProfileKnown: true, Onboarded: true},
			from: RouteOnboarding,
			want: Decision{Action: Redirect, Target: RouteHome, From: RouteOnboarding},
		},
		{
			name: "onboarded elsewhere allows",
			gc:   Context{ProfileKnown: true, Onboarded: true},
			from: "/books",
			want: Decision{Action: Allow},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Onboarding(tc.gc, tc.from))
		})
	}
}

func TestAdmin(t *testing.T) {
	tests := []struct {
		name string
		gc   Context
		from string
		want Decision
	}{
		{
			name: "authz not ready holds",
			gc:   Context{AuthzReady: false},
			from: "/admin",
			want: Decision{Action: Pending},
		},
		{
			name: "non-admin redirected home with origin preserved",
			gc:   Context{AuthzReady: true, IsAdmin: false},
			from: "/admin",
			want: Decision{Action: Redirect, Target: RouteHome, From: "/admin"},
		},
		{
			name: "admin allowed",
			gc:   Context{AuthzReady: true, IsAdmin: true},
			from: "/admin",
			want: Decision{Action: Allow},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Admin(tc.gc, tc.from))
		})
	}
}

func TestChain_StopsAtFirstNonAllow(t *testing.T) {
	// Anonymous ready session attempting the admin screen: Protected must
	// fire before Admin ever gets to look at roles.
	gc := Context{SessionReady: true, Token: "", AuthzReady: true, IsAdmin: false}

	d := Chain(gc, "/admin", Protected, Onboarding, Admin)
	assert.Equal(t, Decision{Action: Redirect, Target: RouteLogin, From: "/admin"}, d)
}

func TestChain_AllAllow(t *testing.T) {
	gc := Context{
		SessionReady: true,
		Token:        "tok",
		ProfileKnown: true,
		Onboarded:    true,
		AuthzReady:   true,
		IsAdmin:      true,
	}

	d := Chain(gc, "/admin", Protected, Onboarding, Admin)
	assert.Equal(t, Decision{Action: Allow}, d)
}
