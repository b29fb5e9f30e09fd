package view

import "github.com/dmitrymomot/authkit/core/identity"

// Style names the visual treatment a role badge gets. Concrete UIs map
// these to CSS classes, colors, or glyphs.
type Style string

const (
	StyleAdmin   Style = "badge-admin"
	StyleDefault Style = "badge-user"
)

// Role badge copy. The product speaks Traditional Chinese; these are the
// labels shipped with the original UI.
const (
	adminLabel   = "管理員"
	defaultLabel = "使用者"
)

// RoleLabel returns the badge text for a role. The mapping is total:
// anything that is not admin gets the regular-user label.
func RoleLabel(role identity.Role) string {
	if role.IsAdmin() {
		return adminLabel
	}
	return defaultLabel
}

// RoleStyle returns the visual treatment for a role, distinct for admins.
func RoleStyle(role identity.Role) Style {
	if role.IsAdmin() {
		return StyleAdmin
	}
	return StyleDefault
}
