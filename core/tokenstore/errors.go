package tokenstore

import "errors"

var (
	// ErrNotFound is returned by Load when no token is remembered.
	ErrNotFound = errors.New("tokenstore: no session token stored")
	// ErrEmptyToken is returned by Save when given an empty token;
	// forgetting a token goes through Clear instead.
	ErrEmptyToken = errors.New("tokenstore: empty token")
	// ErrSaveFailed wraps storage-level failures while persisting a token.
	ErrSaveFailed = errors.New("tokenstore: failed to save token")
	// ErrClearFailed wraps storage-level failures while removing a token.
	ErrClearFailed = errors.New("tokenstore: failed to clear token")
)
