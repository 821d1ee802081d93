package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/bookswap/internal/client/token"
)

const refreshPath = "/auth/refresh"

// headerTransport decorates every outgoing request — public and private
// alike — with the CSRF double-submit header (when the cookie is present),
// a request id, and the client identifier.
type headerTransport struct {
	base http.RoundTripper
	csrf func() string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(clientHeaderName, clientHeaderValue)
	req.Header.Set(requestIDHeaderName, uuid.NewString())
	if tok := t.csrf(); tok != "" {
		req.Header.Set(csrfHeaderName, tok)
	}
	return t.base.RoundTrip(req)
}

// authTransport decorates private-client requests with the bearer token and
// performs the refresh-and-retry dance on 401 responses.
//
// The retry is structural, not flag-guarded: the replay goes straight to the
// underlying transport, so a request is retried at most once no matter what
// the second response says. The refresh endpoint itself is never retried.
// Refresh-then-replay is strictly sequential within one request's lifecycle;
// requests failing concurrently share a single in-flight refresh (see
// Client.refreshAccessToken) and each replays independently with whatever
// token that refresh produced.
type authTransport struct {
	base         http.RoundTripper
	tokens       *token.Store
	refresh      func(ctx context.Context) (string, error)
	clearCookies func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authed := req.Clone(req.Context())
	if tok := t.tokens.Get(); tok != "" {
		authed.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := t.base.RoundTrip(authed)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || strings.HasSuffix(req.URL.Path, refreshPath) {
		return resp, nil
	}

	newToken, refreshErr := t.refresh(req.Context())
	if refreshErr != nil {
		// Token already cleared by the refresh path; also drop the auth
		// cookies so a dead session is not retried on the next bootstrap.
		// The caller gets the original 401, untouched.
		t.clearCookies()
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return resp, nil
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+newToken)

	resp.Body.Close()
	return t.base.RoundTrip(retry)
}
