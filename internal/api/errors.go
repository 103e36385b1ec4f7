package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches any RequestError carrying a 401 or 403 status.
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is returned for every non-2xx backend response. Message is the
// human-readable text extracted from the response body (the backend's
// "message" field when present, else the raw body, else a generic fallback).
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Is lets callers match authorization failures with
// errors.Is(err, ErrUnauthorized).
func (e *RequestError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

func newRequestError(statusCode int, payload any) *RequestError {
	return &RequestError{StatusCode: statusCode, Message: errorMessage(payload)}
}

// errorMessage extracts a displayable message from an error payload.
func errorMessage(payload any) string {
	if m, ok := payload.(map[string]any); ok {
		if s, ok := m["message"].(string); ok && s != "" {
			return s
		}
	}
	if s, ok := payload.(string); ok && s != "" {
		return s
	}
	return "request failed"
}

func wrapTransportError(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
