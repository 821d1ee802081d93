package api

import "net/http"

// Cookie and header names shared with the backend. The CSRF cookie is the
// only one this code reads; the refresh-token cookie is opaque and travels
// with the jar. The backend has shipped the CSRF cookie under two names,
// so both are checked.
const (
	csrfCookieName    = "csrf_token"
	csrfCookieAltName = "fastapi-csrf-token"
	refreshCookieName = "refresh_token"

	csrfHeaderName      = "x-csrf-token"
	requestIDHeaderName = "X-Request-Id"
	clientHeaderName    = "X-Client"
	clientHeaderValue   = "cli"
)

// csrfToken returns the CSRF cookie value from the jar, or "" when absent.
func (c *Client) csrfToken() string {
	for _, ck := range c.jar.Cookies(c.baseURL) {
		if ck.Name == csrfCookieName || ck.Name == csrfCookieAltName {
			return ck.Value
		}
	}
	return ""
}

// HasCSRFCookie reports whether a CSRF cookie is readable. The session
// bootstrap uses it to skip the refresh attempt entirely for anonymous
// starts.
func (c *Client) HasCSRFCookie() bool {
	return c.csrfToken() != ""
}

// ClearAuthCookies drops the client-visible auth cookies (refresh token and
// both CSRF variants) from the jar. Called when a refresh is rejected so a
// later bootstrap does not retry a dead session.
func (c *Client) ClearAuthCookies() {
	expired := make([]*http.Cookie, 0, 3)
	for _, name := range []string{refreshCookieName, csrfCookieName, csrfCookieAltName} {
		expired = append(expired, &http.Cookie{Name: name, Value: "", MaxAge: -1, Path: "/"})
	}
	c.jar.SetCookies(c.baseURL, expired)
}
