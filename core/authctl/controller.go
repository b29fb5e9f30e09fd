package authctl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/authkit/core/identity"
	"github.com/dmitrymomot/authkit/core/notify"
	"github.com/dmitrymomot/authkit/core/tokenstore"
	"github.com/dmitrymomot/authkit/core/view"
)

// Controller owns the authentication state machine. It is the only
// component that mutates the auth state and the persisted token; view,
// bus, and store are driven from here and never write back.
//
// Entry points (Initialize, Login, Logout) serialize against each other:
// a second invocation queues behind the one in flight, so two requests
// can never resolve out of order and leave stale view state.
type Controller struct {
	transport Transport
	tokens    tokenstore.Store
	binder    view.Binder
	bus       *notify.Bus
	logger    *slog.Logger
	messages  Messages

	// opMu serializes the entry points, I/O included.
	opMu sync.Mutex
	// mu guards state and user; kept separate from opMu so accessors and
	// event subscribers can read while an operation holds opMu.
	mu    sync.RWMutex
	state State
	user  identity.User
}

// Option configures a Controller.
type Option func(*Controller)

// WithTokenStore sets where the session token is persisted. Defaults to
// an in-memory store (no remembered session across restarts).
func WithTokenStore(store tokenstore.Store) Option {
	return func(c *Controller) {
		if store != nil {
			c.tokens = store
		}
	}
}

// WithBinder sets the presentation port. Defaults to a no-op binder.
func WithBinder(binder view.Binder) Option {
	return func(c *Controller) {
		if binder != nil {
			c.binder = binder
		}
	}
}

// WithBus sets a shared notification bus. Defaults to a private bus,
// reachable via Controller.Bus.
func WithBus(bus *notify.Bus) Option {
	return func(c *Controller) {
		if bus != nil {
			c.bus = bus
		}
	}
}

// WithLogger configures structured logging. If not set, logging is
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMessages overrides the fixed error copy.
func WithMessages(m Messages) Option {
	return func(c *Controller) {
		if m.LoginFallback != "" {
			c.messages.LoginFallback = m.LoginFallback
		}
		if m.Connectivity != "" {
			c.messages.Connectivity = m.Connectivity
		}
	}
}

// New creates a Controller in StateUnknown.
func New(transport Transport, opts ...Option) (*Controller, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}

	c := &Controller{
		transport: transport,
		tokens:    tokenstore.NewMemoryStore(),
		binder:    view.NopBinder{},
		bus:       notify.NewBus(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		messages:  DefaultMessages(),
		state:     StateUnknown,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Bus returns the notification bus the controller publishes on, so other
// modules can subscribe to the logged-in/logged-out events.
func (c *Controller) Bus() *notify.Bus {
	return c.bus
}

// State returns the current authentication state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentUser returns the authenticated user, if any.
func (c *Controller) CurrentUser() (identity.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != StateAuthenticated {
		return identity.User{}, false
	}
	return c.user, true
}

// Initialize probes the backend for an existing session and resolves the
// initial Unknown state. It fails open: any probe failure (network error,
// non-success status, malformed body) degrades to the anonymous state and
// the login prompt, never to a blocking error. An unreachable backend
// must not wedge the host application.
//
// Returns the resolved state.
func (c *Controller) Initialize(ctx context.Context) State {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	res, err := c.transport.CurrentSession(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "session probe failed, falling back to anonymous",
			slog.Any("error", err))
		c.becomeAnonymous(ctx)
		return StateAnonymous
	}

	if !res.OK() || res.User == nil {
		c.becomeAnonymous(ctx)
		return StateAnonymous
	}

	c.becomeAuthenticated(ctx, *res.User, "")
	c.logger.InfoContext(ctx, "session restored",
		slog.String("username", res.User.Username),
		slog.String("role", string(res.User.Role)))
	return StateAuthenticated
}

// Login submits credentials. The username is trimmed before sending; no
// further client-side validation happens, the backend owns rejection and
// its error text is shown verbatim.
//
// On success the state becomes Authenticated, a returned token is
// persisted exactly as received, the login surface is hidden and its form
// reset, and the logged-in event is published. On a server rejection the
// state is unchanged and the server's error text (or the fixed fallback)
// is shown inline; on a transport failure a distinct connectivity message
// is shown instead so the two failure classes stay distinguishable.
//
// The returned error reports the outcome for programmatic callers; all
// user-facing handling has already happened through the binder.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.binder.ClearInlineError()
	username = strings.TrimSpace(username)

	res, err := c.transport.Login(ctx, username, password)
	if err != nil {
		c.logger.ErrorContext(ctx, "login request failed",
			slog.String("username", username),
			slog.Any("error", err))
		c.binder.ShowInlineError(c.messages.Connectivity)
		return fmt.Errorf("authctl: login: %w", err)
	}

	if !res.OK() || res.User == nil {
		msg := res.ErrorMessage(c.messages.LoginFallback)
		c.binder.ShowInlineError(msg)
		return fmt.Errorf("%w: %s", ErrLoginRejected, msg)
	}

	c.binder.ResetLoginForm()
	c.becomeAuthenticated(ctx, *res.User, res.Token)
	c.logger.InfoContext(ctx, "user logged in",
		slog.String("username", res.User.Username),
		slog.String("role", string(res.User.Role)))
	return nil
}

// Logout ends the session locally and notifies the backend best-effort.
// The local transition always completes first: user and token are cleared,
// the login surface is presented, and the logged-out event is published
// before the remote call is attempted, so backend unreachability can never
// hold the client's view of its own session hostage. Any remote failure is
// logged and otherwise ignored.
//
// Logout is idempotent; invoking it while already anonymous performs the
// same clear-and-present sequence.
func (c *Controller) Logout(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.becomeAnonymous(ctx)
	notify.PublishLoggedOut(ctx, c.bus)
	c.logger.InfoContext(ctx, "user logged out")

	// The cookie jar still carries the session cookie, so the backend can
	// identify which session to invalidate even though the local token is
	// already gone.
	if res, err := c.transport.Logout(ctx); err != nil {
		c.logger.WarnContext(ctx, "remote logout failed, local session already cleared",
			slog.Any("error", err))
	} else if !res.OK() {
		c.logger.DebugContext(ctx, "remote logout not acknowledged",
			slog.Int("status_code", res.StatusCode))
	}
}

// becomeAuthenticated installs user as the session identity, persists a
// non-empty token verbatim, updates the view, and publishes logged-in.
func (c *Controller) becomeAuthenticated(ctx context.Context, user identity.User, token string) {
	c.mu.Lock()
	c.state = StateAuthenticated
	c.user = user
	c.mu.Unlock()

	if token != "" {
		if err := c.tokens.Save(ctx, token); err != nil {
			c.logger.WarnContext(ctx, "failed to persist session token",
				slog.Any("error", err))
		}
	}

	c.binder.HideLogin()
	c.binder.RenderAuthenticatedUser(user)
	notify.PublishLoggedIn(ctx, c.bus, user)
}

// becomeAnonymous clears the session identity and token and presents the
// login surface. It does not publish the logged-out event: only an actual
// logout does that, a failed probe is not an announcement-worthy change.
func (c *Controller) becomeAnonymous(ctx context.Context) {
	c.mu.Lock()
	c.state = StateAnonymous
	c.user = identity.User{}
	c.mu.Unlock()

	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.WarnContext(ctx, "failed to clear session token",
			slog.Any("error", err))
	}

	c.binder.RenderAnonymous()
	c.binder.PresentLogin()
}
