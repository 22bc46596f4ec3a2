package cardapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL = errors.New("cardapi: invalid base url")
	ErrInvalidID      = errors.New("cardapi: card id must be positive")
	ErrNotFound       = errors.New("cardapi: card not found")
	ErrUnavailable    = errors.New("cardapi: service unavailable")
	ErrDecodeResponse = errors.New("cardapi: malformed response")
)

// APIError is a non-2xx answer from the card API. Message is the envelope's
// message when present, otherwise the trimmed response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("cardapi: status %d", e.StatusCode)
	}
	return fmt.Sprintf("cardapi: status %d: %s", e.StatusCode, e.Message)
}

// Is makes a 404 APIError match ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Message returns the server-supplied message carried by err, if any.
// UI code uses it to show the API's own wording for failed writes.
func Message(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// retryable reports whether a failed read may succeed on a later attempt.
func retryable(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return true
	}
	return status >= 500
}
