package harvest

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned by NewClient when the account id or the
// access token is empty.
var ErrMissingCredential = errors.New("harvest account id and access token are required")

// TransportError is a failure below HTTP: DNS, connection reset, timeout,
// or a body that could not be read.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("harvest %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a deadline or client timeout.
func (e *TransportError) Timeout() bool {
	var t interface{ Timeout() bool }
	if errors.As(e.Err, &t) {
		return t.Timeout()
	}
	return false
}

// APIError is a non-200 response. Body holds the raw response text.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("harvest API error %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsAPI reports whether err is or wraps an *APIError.
func IsAPI(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
