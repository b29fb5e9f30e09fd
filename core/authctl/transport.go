package authctl

import (
	"context"

	"github.com/dmitrymomot/authkit/core/authclient"
)

// Transport is what the controller needs from the backend API. The
// contract mirrors authclient.Client: a non-nil error means the call
// itself failed (connectivity), a nil error means the server responded
// and the Response says what it decided. The controller applies different
// failure policy to the two classes.
type Transport interface {
	CurrentSession(ctx context.Context) (authclient.Response, error)
	Login(ctx context.Context, username, password string) (authclient.Response, error)
	Logout(ctx context.Context) (authclient.Response, error)
}

var _ Transport = (*authclient.Client)(nil)
