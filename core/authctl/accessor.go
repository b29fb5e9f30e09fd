package authctl

import (
	"context"

	"github.com/dmitrymomot/authkit/core/identity"
)

// Accessor is the programmatic surface exposed to unrelated modules of
// the host application. It offers read access to the session plus logout,
// without coupling callers to the controller's internals.
type Accessor struct {
	c *Controller
}

// Accessor returns the controller's exposed surface.
func (c *Controller) Accessor() Accessor {
	return Accessor{c: c}
}

// CurrentUser returns the authenticated user, if any.
func (a Accessor) CurrentUser() (identity.User, bool) {
	return a.c.CurrentUser()
}

// IsLoggedIn reports whether an authenticated session exists.
func (a Accessor) IsLoggedIn() bool {
	return a.c.State() == StateAuthenticated
}

// IsAdmin reports whether the current user holds the admin role.
func (a Accessor) IsAdmin() bool {
	user, ok := a.c.CurrentUser()
	return ok && user.IsAdmin()
}

// Logout ends the session; see Controller.Logout.
func (a Accessor) Logout(ctx context.Context) {
	a.c.Logout(ctx)
}
