package identity

// Role classifies a user's privilege level as reported by the auth backend.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole normalizes a backend-supplied role string.
// Any value other than "admin" maps to RoleUser, so an unexpected role
// from the backend degrades to the least-privileged classification
// instead of failing.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// IsAdmin reports whether the role grants administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is the identity the backend reports for an authenticated session.
// It is immutable for the session's duration; a new probe or login replaces
// it wholesale.
type User struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Role        Role   `json:"role"`
}

// Label returns the name to display for the user: the display name when
// the backend provided one, otherwise the username.
func (u User) Label() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
