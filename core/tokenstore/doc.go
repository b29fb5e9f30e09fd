// Package tokenstore persists the opaque session token issued by the auth
// backend.
//
// The token is a single well-known value: it is written when a login
// response carries one, replayed on later requests, and removed on logout.
// There is no expiry or rotation logic on the client side; an absent value
// simply means "no remembered session" (tokenstore.ErrNotFound).
//
// Three implementations ship with the package:
//
//   - FileStore: one file under the user's configuration directory, the
//     durable default.
//   - MemoryStore: process-lifetime only, for tests and ephemeral use.
//   - RedisStore: for host applications that already run Redis.
//
// Only the auth controller writes to a store; other components at most
// read from it (the HTTP client, to replay the token).
package tokenstore
