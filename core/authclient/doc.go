// Package authclient is the HTTP transport for the backend authentication
// API. It wraps the /api/auth surface (session probe, login, logout, and
// the admin user-management routes) behind typed methods that return a
// decoded Response.
//
// The contract callers rely on: a non-nil error means the transport
// itself failed and the server never responded (classify with
// errors.Is(err, authclient.ErrUnreachable)); a nil error means the
// server responded, and Response.OK / Response.ErrorMessage describe what
// it said. This split is what lets the controller show a connectivity
// message for one failure class and the server's own text for the other.
//
// Requests are credentialed two ways, matching what the backend accepts:
// a cookie jar replays the session cookie, and a remembered token from an
// attached tokenstore.Store is sent as "Authorization: Bearer".
//
//	var cfg authclient.Config
//	config.MustLoad(&cfg)
//
//	client, err := authclient.New(cfg,
//	    authclient.WithTokenStore(store),
//	    authclient.WithLogger(logger),
//	)
package authclient
