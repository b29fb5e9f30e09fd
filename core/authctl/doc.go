// Package authctl owns the client-side authentication state machine: it
// decides whether the current user is anonymous or authenticated,
// mediates login and logout against the backend API, and keeps the view
// and other modules synchronized with that decision.
//
// State flow:
//
//	Unknown ──Initialize──▶ {Anonymous, Authenticated}
//	Anonymous ⇄ Authenticated   (Login / Logout)
//
// Failure policy (the part worth reading twice):
//
//   - Initialize fails open. A missing, malformed, rejected, or
//     unreachable probe all resolve to Anonymous plus the login prompt;
//     the failure is logged, never shown. An unreachable auth backend
//     must not wedge the host application.
//   - Login distinguishes the server saying no (server error text shown
//     verbatim, or a fixed fallback) from the server being unreachable
//     (a distinct connectivity message). The two never share copy.
//   - Logout completes locally no matter what the backend does: identity
//     and token are cleared and the logged-out event published before the
//     best-effort remote call.
//
// Construction wires the collaborator ports:
//
//	ctrl, err := authctl.New(client,
//	    authctl.WithTokenStore(store),
//	    authctl.WithBinder(binder),
//	    authctl.WithLogger(logger),
//	)
//	ctrl.Initialize(ctx)
//
// Other modules use ctrl.Accessor() and ctrl.Bus() instead of holding the
// controller itself.
package authctl
