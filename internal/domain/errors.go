package domain

import (
	"errors"
	"net/http"
)

// Sentinel errors for façade operations
var (
	// ErrServerOffline indicates the hostel backend is unreachable
	ErrServerOffline = errors.New("server is not reachable")

	// ErrAuthFailed indicates invalid credentials or an expired token
	ErrAuthFailed = errors.New("authentication failed")

	// ErrValidation indicates the server rejected the request body
	ErrValidation = errors.New("request rejected by server")

	// ErrConflict indicates a duplicate record (e.g. an already-registered email)
	ErrConflict = errors.New("conflicting record")

	// ErrNotFound indicates the referenced record does not exist server-side
	ErrNotFound = errors.New("record not found")
)

// APIError is the error surfaced by the façade for failed operations.
// Offline is true only when the failure was connectivity, never when the
// server itself rejected the request; feature modules use it to tell
// "try again later" apart from "fix your input".
type APIError struct {
	Status  int    // HTTP status, 0 for connectivity failures
	Message string // user-facing description
	Offline bool
	kind    error // sentinel for errors.Is
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.kind }

// NewOfflineError returns the error raised when a write is attempted
// while the backend is unreachable.
func NewOfflineError() *APIError {
	return &APIError{
		Message: "Server is not reachable. Please check your internet connection or try again later.",
		Offline: true,
		kind:    ErrServerOffline,
	}
}

// NewServerError classifies a non-2xx response into the error taxonomy.
// The server's own message is propagated verbatim when present.
func NewServerError(status int, message string) *APIError {
	kind := ErrValidation
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrAuthFailed
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusConflict:
		kind = ErrConflict
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message, kind: kind}
}

// IsOffline reports whether err represents a connectivity failure.
func IsOffline(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Offline
	}
	return errors.Is(err, ErrServerOffline)
}
