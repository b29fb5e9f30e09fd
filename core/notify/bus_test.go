package notify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/identity"
	"github.com/dmitrymomot/authkit/core/notify"
)

func TestBus_Publish(t *testing.T) {
	t.Parallel()

	t.Run("fans out to all subscribers in order", func(t *testing.T) {
		t.Parallel()

		bus := notify.NewBus()
		var order []string

		bus.Subscribe("ping", func(_ context.Context, _ notify.Event) {
			order = append(order, "first")
		})
		bus.Subscribe("ping", func(_ context.Context, _ notify.Event) {
			order = append(order, "second")
		})

		bus.Publish(context.Background(), "ping", nil)

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("zero subscribers is a no-op", func(t *testing.T) {
		t.Parallel()

		bus := notify.NewBus()
		assert.NotPanics(t, func() {
			bus.Publish(context.Background(), "nobody-listens", "payload")
		})
	})

	t.Run("stamps events with id and name", func(t *testing.T) {
		t.Parallel()

		bus := notify.NewBus()
		var got notify.Event
		bus.Subscribe("ping", func(_ context.Context, e notify.Event) { got = e })

		bus.Publish(context.Background(), "ping", 42)

		assert.Equal(t, "ping", got.Name)
		assert.Equal(t, 42, got.Payload)
		assert.NotEmpty(t, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("panicking handler does not starve the next", func(t *testing.T) {
		t.Parallel()

		bus := notify.NewBus()
		var delivered bool

		bus.Subscribe("ping", func(_ context.Context, _ notify.Event) {
			panic("boom")
		})
		bus.Subscribe("ping", func(_ context.Context, _ notify.Event) {
			delivered = true
		})

		require.NotPanics(t, func() {
			bus.Publish(context.Background(), "ping", nil)
		})
		assert.True(t, delivered)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		t.Parallel()

		bus := notify.NewBus()
		var calls int
		unsubscribe := bus.Subscribe("ping", func(_ context.Context, _ notify.Event) {
			calls++
		})

		bus.Publish(context.Background(), "ping", nil)
		unsubscribe()
		unsubscribe() // second call is harmless
		bus.Publish(context.Background(), "ping", nil)

		assert.Equal(t, 1, calls)
	})
}

func TestTypedEvents(t *testing.T) {
	t.Parallel()

	t.Run("logged-in delivers the user", func(t *testing.T) {
		t.Parallel()

		bus := notify.NewBus()
		var got identity.User
		notify.OnLoggedIn(bus, func(_ context.Context, user identity.User) {
			got = user
		})

		user := identity.User{Username: "admin", Role: identity.RoleAdmin}
		notify.PublishLoggedIn(context.Background(), bus, user)

		assert.Equal(t, user, got)
	})

	t.Run("logged-out carries no payload", func(t *testing.T) {
		t.Parallel()

		bus := notify.NewBus()
		var called bool
		notify.OnLoggedOut(bus, func(_ context.Context) { called = true })

		notify.PublishLoggedOut(context.Background(), bus)

		assert.True(t, called)
	})

	t.Run("nil bus publish helpers are no-ops", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			notify.PublishLoggedIn(context.Background(), nil, identity.User{})
			notify.PublishLoggedOut(context.Background(), nil)
		})
	})
}
