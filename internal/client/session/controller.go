// Package session owns the access-token lifecycle: the bootstrap that tries
// to silently restore a session on startup, the readiness flag the rest of
// the client gates on, and logout. Failures inside this lifecycle are
// absorbed into state — the user only ever sees a login prompt, never an
// error from a silent refresh.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/bookswap/internal/client/cache"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/client/token"
	"github.com/dmitrijs2005/bookswap/internal/logging"
)

// API is the slice of the HTTP client the controller drives.
type API interface {
	Login(ctx context.Context, payload models.LoginPayload) (models.AuthResponse, error)
	Register(ctx context.Context, payload models.RegisterPayload) (models.AuthResponse, error)
	Refresh(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	HasCSRFCookie() bool
}

// Controller tracks two fields, the current token and a readiness flag.
// Readiness latches true exactly once, when Bootstrap finishes (successfully
// or not), and never reverts; no authorization-dependent decision should be
// made before it is true.
type Controller struct {
	tokens *token.Store
	api    API
	cache  *cache.Cache
	log    logging.Logger

	mu    sync.Mutex
	ready bool

	unsubscribe func()
}

// NewController wires the controller to the shared token store and cache.
// From construction on, any transition of the token to empty — logout,
// failed silent refresh, failed retry refresh — clears the entire cache:
// no cached per-user data survives the loss of a session.
func NewController(tokens *token.Store, api API, c *cache.Cache, log logging.Logger) *Controller {
	ctrl := &Controller{
		tokens: tokens,
		api:    api,
		cache:  c,
		log:    log.With("component", "session"),
	}
	ctrl.unsubscribe = tokens.Subscribe(func(tok string) {
		if tok == "" {
			c.Clear()
		}
	})
	return ctrl
}

// Bootstrap attempts to silently restore a session. Without a CSRF cookie no
// refresh is attempted — the server could not authorize it anyway — and the
// controller becomes ready immediately with no network calls. With one, a
// refresh is tried and any failure degrades to an anonymous session. Errors
// are never returned to the caller.
func (c *Controller) Bootstrap(ctx context.Context) {
	defer c.markReady()

	if !c.api.HasCSRFCookie() {
		c.log.Debug(ctx, "no csrf cookie, starting anonymous")
		return
	}

	if _, err := c.api.Refresh(ctx); err != nil {
		c.log.Debug(ctx, "silent refresh failed", "error", err)
		c.tokens.Set("")
		return
	}
	c.log.Debug(ctx, "session restored")
}

func (c *Controller) markReady() {
	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
}

// Ready reports whether the bootstrap sequence has completed.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Token returns the current access token, "" when anonymous.
func (c *Controller) Token() string {
	return c.tokens.Get()
}

// Login authenticates and stores the minted token, which un-gates the
// profile query and everything behind it.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	resp, err := c.api.Login(ctx, models.LoginPayload{Email: email, Password: password})
	if err != nil {
		return err
	}
	c.tokens.Set(resp.AccessToken)
	return nil
}

// Register creates an account; the server logs the new user in immediately.
func (c *Controller) Register(ctx context.Context, username, email, password string) error {
	resp, err := c.api.Register(ctx, models.RegisterPayload{Username: username, Email: email, Password: password})
	if err != nil {
		return err
	}
	c.tokens.Set(resp.AccessToken)
	return nil
}

// Logout revokes the session server-side on a best-effort basis and then
// unconditionally clears the token and cache. It never fails from the
// caller's perspective.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Logout(ctx); err != nil {
		c.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	c.tokens.Set("")
	c.cache.Clear()
}

// Close detaches the controller from the token store.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Claims is the subset of access-token claims surfaced for display.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenClaims peeks at the current access token without verifying its
// signature — the token is the server's to validate; this is display-only
// material for "whoami" style output. Returns false when no token is held or
// it does not parse as a JWT.
func (c *Controller) TokenClaims() (Claims, bool) {
	raw := c.tokens.Get()
	if raw == "" {
		return Claims{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return Claims{}, false
	}

	out := Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, true
}
