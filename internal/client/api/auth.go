package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// Login authenticates with email and password via the public client and
// returns the minted access token. Storing the token is the session
// controller's job, not this layer's.
func (c *Client) Login(ctx context.Context, payload models.LoginPayload) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.doPublic(ctx, http.MethodPost, "/auth/login", nil, payload, &out)
	return out, err
}

// Register creates an account via the public client. The server logs the new
// user in immediately and returns an access token.
func (c *Client) Register(ctx context.Context, payload models.RegisterPayload) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.doPublic(ctx, http.MethodPost, "/auth/register", nil, payload, &out)
	return out, err
}

// Refresh exchanges the refresh-token cookie for a new access token. It is
// the same coalesced refresh the private transport uses on 401, so a
// bootstrap racing an expired request never doubles up.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	return c.refreshAccessToken(ctx)
}

// Logout tells the server to revoke the session. The caller is expected to
// clear local state regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.doPrivate(ctx, http.MethodPost, "/auth/logout", nil, struct{}{}, nil)
}
