package tokenstore

import "context"

// Store persists the single opaque session token between process runs.
// The token is stored and returned byte-for-byte; implementations must
// never inspect, trim, or rewrite it.
//
// Absence of a value is the normal "no remembered session" state and is
// reported as ErrNotFound, not as a failure.
type Store interface {
	// Save remembers the token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Load returns the remembered token, or ErrNotFound if there is none.
	Load(ctx context.Context) (string, error)
	// Clear forgets the token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
