// Package api implements the HTTP client pair the rest of the client is
// built on: a public client for login/register/refresh and a private client
// that attaches the bearer token and transparently refreshes it once when a
// request comes back 401. Endpoint wrappers for the backend's resource
// families live alongside the transports.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/bookswap/internal/client/config"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/client/token"
	"github.com/dmitrijs2005/bookswap/internal/logging"
)

// Client bundles the public and private HTTP clients. Both share one cookie
// jar (so the server-managed refresh-token cookie travels with either) and
// one base URL; they differ only in bearer injection and 401 handling.
type Client struct {
	baseURL *url.URL
	jar     http.CookieJar
	tokens  *token.Store
	log     logging.Logger

	public  *http.Client
	private *http.Client

	refreshGroup singleflight.Group
}

// New builds the client pair from configuration. The provided token store is
// read by the private transport on every request and written by refreshes.
func New(cfg *config.Config, tokens *token.Store, log logging.Logger) (*Client, error) {
	baseURL, err := url.Parse(cfg.ServerBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing server base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		jar:     jar,
		tokens:  tokens,
		log:     log.With("component", "api"),
	}

	headers := &headerTransport{base: http.DefaultTransport, csrf: c.csrfToken}

	c.public = &http.Client{
		Jar:       jar,
		Timeout:   cfg.RequestTimeout,
		Transport: headers,
	}
	c.private = &http.Client{
		Jar:     jar,
		Timeout: cfg.RequestTimeout,
		Transport: &authTransport{
			base:         headers,
			tokens:       tokens,
			refresh:      c.refreshAccessToken,
			clearCookies: c.ClearAuthCookies,
		},
	}

	return c, nil
}

// refreshAccessToken exchanges the refresh-token cookie for a new access
// token and stores it. Concurrent callers are coalesced into a single
// in-flight refresh; each caller gets the shared outcome. On any failure the
// token is cleared, so the next guarded navigation degrades to "no session".
// The 401-retry path additionally drops the auth cookies; the session
// bootstrap does not, so a transient network failure there leaves a later
// refresh possible.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		tok, err := c.doRefresh(ctx)
		if err != nil {
			c.tokens.Set("")
			return nil, err
		}
		c.tokens.Set(tok)
		return tok, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) doRefresh(ctx context.Context) (string, error) {
	if c.csrfToken() == "" {
		return "", ErrMissingCSRF
	}
	var out models.AuthResponse
	if err := c.doPublic(ctx, http.MethodPost, refreshPath, nil, struct{}{}, &out); err != nil {
		return "", fmt.Errorf("refreshing session: %w", err)
	}
	return out.AccessToken, nil
}
