package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport-level failures: refused connections,
	// DNS errors, timeouts.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is matched by 401/403 responses via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMissingCSRF is returned when a refresh is required but no CSRF
	// cookie is readable, so the server could not authorize the call anyway.
	ErrMissingCSRF = errors.New("missing csrf token")
)

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Is lets errors.Is(err, ErrUnauthorized) match auth failures without
// callers inspecting status codes.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && (e.Code == 401 || e.Code == 403)
}

// IsStatus reports whether err is a StatusError with the given code.
// Used for the odd non-standard statuses the backend emits, e.g. 412 from
// the nearest-exchange-location lookup meaning "no result".
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
