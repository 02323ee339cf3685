package client

import (
	"errors"
	"fmt"
)

// ErrMissingUserID indicates a request-carrying operation was called without
// a user identifier. Every such operation requires a non-empty caller-supplied
// userId; the client never invents or caches one. Check with errors.Is.
var ErrMissingUserID = errors.New("userId is required")

// RequestError is a server-reported failure: the server answered with a
// non-2xx status. Message carries the body's error field when the server
// supplied one, otherwise "HTTP <status>". Transport-level failures (DNS,
// connection refused, timeouts) are never a RequestError; they propagate as
// the underlying transport error.
//
// Retrieve it with errors.As:
//
//	var reqErr *client.RequestError
//	if errors.As(err, &reqErr) && reqErr.StatusCode == 404 { ... }
type RequestError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("permem: %s (status %d)", e.Message, e.StatusCode)
}
