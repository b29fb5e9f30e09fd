package notify

import (
	"context"

	"github.com/dmitrymomot/authkit/core/identity"
)

// Authentication-state event names published by the auth controller.
const (
	// EventLoggedIn carries the authenticated identity.User as payload.
	EventLoggedIn = "auth.logged_in"
	// EventLoggedOut carries no payload.
	EventLoggedOut = "auth.logged_out"
)

// PublishLoggedIn publishes the logged-in event for user.
func PublishLoggedIn(ctx context.Context, bus *Bus, user identity.User) {
	if bus == nil {
		return
	}
	bus.Publish(ctx, EventLoggedIn, user)
}

// PublishLoggedOut publishes the logged-out event.
func PublishLoggedOut(ctx context.Context, bus *Bus) {
	if bus == nil {
		return
	}
	bus.Publish(ctx, EventLoggedOut, nil)
}

// OnLoggedIn subscribes fn to the logged-in event with a typed payload.
// Events whose payload is not an identity.User are ignored.
func OnLoggedIn(bus *Bus, fn func(ctx context.Context, user identity.User)) (unsubscribe func()) {
	return bus.Subscribe(EventLoggedIn, func(ctx context.Context, e Event) {
		if user, ok := e.Payload.(identity.User); ok {
			fn(ctx, user)
		}
	})
}

// OnLoggedOut subscribes fn to the logged-out event.
func OnLoggedOut(bus *Bus, fn func(ctx context.Context)) (unsubscribe func()) {
	return bus.Subscribe(EventLoggedOut, func(ctx context.Context, _ Event) {
		fn(ctx)
	})
}
