package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps network-level failures: connection refused,
	// DNS, timeouts. Callers render these in-transcript, never as a modal.
	ErrUnavailable = errors.New("server unavailable")

	// ErrAuthExpired maps HTTP 401.
	ErrAuthExpired = errors.New("authorization expired")

	// ErrForbidden maps HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")
)

// StatusError carries a non-2xx HTTP status together with the best-effort
// server-provided detail string. It unwraps to the matching sentinel for
// the statuses the client distinguishes.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Detail)
}

func (e *StatusError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrAuthExpired
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	}
	return nil
}
