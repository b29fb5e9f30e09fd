// Package notify provides a synchronous in-process publish/subscribe
// channel for broadcasting authentication-state changes to other modules
// of the host application.
//
// Delivery is a best-effort fan-out in the publisher's goroutine: handlers
// run in subscription order, a panicking handler is recovered and logged
// without stopping the rest, and publishing with zero subscribers is a
// no-op rather than an error.
//
// Two well-known events are published by the auth controller:
//
//	notify.OnLoggedIn(bus, func(ctx context.Context, user identity.User) {
//	    // refresh module state for the signed-in user
//	})
//	notify.OnLoggedOut(bus, func(ctx context.Context) {
//	    // drop per-user state
//	})
//
// The typed helpers exist so subscribers depend on a payload contract
// instead of an event-naming convention.
package notify
