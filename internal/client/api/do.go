package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody bounds how much of an error response is kept for messages.
const maxErrorBody = 4 << 10

func (c *Client) doPublic(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.do(ctx, c.public, method, path, query, body, out)
}

func (c *Client) doPrivate(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.do(ctx, c.private, method, path, query, body, out)
}

// do issues a JSON request and decodes a JSON response into out (when out is
// non-nil). Transport failures map to ErrUnavailable; non-2xx responses come
// back as *StatusError.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// doMultipart uploads named files as a multipart/form-data request via the
// private client. Used by photo endpoints.
func (c *Client) doMultipart(ctx context.Context, method, path, fieldName string, files map[string][]byte, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := mw.CreateFormFile(fieldName, name)
		if err != nil {
			return fmt.Errorf("building multipart body: %w", err)
		}
		if _, err := part.Write(content); err != nil {
			return fmt.Errorf("building multipart body: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("building multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.private.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// endpoint joins the base URL with an endpoint path, preserving trailing
// slashes the backend routing is picky about.
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
