package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Handler receives a published event. Handlers run synchronously in the
// publisher's goroutine and should return quickly.
type Handler func(ctx context.Context, e Event)

// Bus is a synchronous in-process publish/subscribe channel. Publishing
// fans out to every subscriber of the event name in subscription order;
// publishing with zero subscribers is a no-op.
//
// Bus is safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]*subscription
	logger *slog.Logger
}

type subscription struct {
	handler Handler
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger configures structured logging for the bus.
// If not set, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		subs:   make(map[string][]*subscription),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for the named event and returns a function
// that removes the subscription. Unsubscribing twice is harmless.
func (b *Bus) Subscribe(name string, handler Handler) (unsubscribe func()) {
	if handler == nil {
		return func() {}
	}

	sub := &subscription{handler: handler}

	b.mu.Lock()
	b.subs[name] = append(b.subs[name], sub)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(name, sub) })
	}
}

func (b *Bus) remove(name string, sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[name]
	for i, s := range subs {
		if s == sub {
			b.subs[name] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the payload to every subscriber of name in the caller's
// goroutine. A panicking handler is recovered and logged; remaining
// handlers still run. Delivery is best-effort: there is no return value to
// fail on, matching fire-and-forget notification semantics.
func (b *Bus) Publish(ctx context.Context, name string, payload any) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.subs[name]))
	copy(subs, b.subs[name])
	b.mu.RUnlock()

	if len(subs) == 0 {
		return
	}

	e := newEvent(name, payload)
	b.logger.DebugContext(ctx, "publishing event",
		slog.String("event", name),
		slog.String("event_id", e.ID),
		slog.Int("subscribers", len(subs)))

	for _, sub := range subs {
		b.safeHandle(ctx, sub.handler, e)
	}
}

func (b *Bus) safeHandle(ctx context.Context, handler Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "event handler panicked",
				slog.String("event", e.Name),
				slog.Any("panic", fmt.Sprintf("%v", r)))
		}
	}()
	handler(ctx, e)
}
