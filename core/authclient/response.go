package authclient

import "github.com/dmitrymomot/authkit/core/identity"

// Response is the decoded backend reply for any auth endpoint. A Response
// is only produced when the server actually responded; transport-level
// failures are returned as errors instead, so the two failure classes stay
// distinguishable.
//
// A body that fails to decode leaves the wire fields zero-valued, which
// downstream code treats the same as a rejection (fail safe on malformed
// responses).
type Response struct {
	// StatusCode is the HTTP status of the reply.
	StatusCode int `json:"-"`

	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`

	User  *identity.User  `json:"user,omitempty"`
	Token string          `json:"token,omitempty"`
	Users []identity.User `json:"users,omitempty"`
}

// OK reports whether the server accepted the request: a 2xx status code
// and an explicit "success" status in the body.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300 && r.Status == statusSuccess
}

// ErrorMessage returns the server-supplied error text verbatim, or
// fallback when the server sent none.
func (r Response) ErrorMessage(fallback string) string {
	if r.Error != "" {
		return r.Error
	}
	return fallback
}

const statusSuccess = "success"
