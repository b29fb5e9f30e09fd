package view

import "github.com/dmitrymomot/authkit/core/identity"

// Binder is the presentation port the auth controller drives. The
// controller never touches rendering directly; a concrete UI (terminal,
// desktop, web view) implements these operations however it likes.
type Binder interface {
	// PresentLogin shows the login surface (modal, screen, prompt).
	PresentLogin()
	// HideLogin dismisses the login surface.
	HideLogin()
	// ResetLoginForm clears the username/password inputs.
	ResetLoginForm()
	// ShowInlineError displays msg in the login surface's error slot.
	ShowInlineError(msg string)
	// ClearInlineError removes any displayed inline error.
	ClearInlineError()
	// RenderAuthenticatedUser updates the chrome for a signed-in user:
	// display name, role badge, signed-in affordances.
	RenderAuthenticatedUser(user identity.User)
	// RenderAnonymous updates the chrome for the signed-out state.
	RenderAnonymous()
}

// NopBinder implements Binder with no-ops. It is the default binder for
// headless embeddings that only care about state and notifications.
type NopBinder struct{}

func (NopBinder) PresentLogin()                           {}
func (NopBinder) HideLogin()                              {}
func (NopBinder) ResetLoginForm()                         {}
func (NopBinder) ShowInlineError(string)                  {}
func (NopBinder) ClearInlineError()                       {}
func (NopBinder) RenderAuthenticatedUser(_ identity.User) {}
func (NopBinder) RenderAnonymous()                        {}

var _ Binder = NopBinder{}
