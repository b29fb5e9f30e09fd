package authclient

import "errors"

var (
	// ErrMissingBaseURL is returned when the client is built without a
	// backend base URL.
	ErrMissingBaseURL = errors.New("authclient: missing base URL")
	// ErrInvalidBaseURL is returned when the configured base URL does not
	// parse.
	ErrInvalidBaseURL = errors.New("authclient: invalid base URL")
	// ErrUnreachable wraps transport-level failures: the HTTP round trip
	// itself did not complete (connection refused, timeout, DNS, context
	// cancellation). The server never responded.
	ErrUnreachable = errors.New("authclient: backend unreachable")
)
