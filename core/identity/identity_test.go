package identity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/identity"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	t.Run("admin maps to admin", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, identity.RoleAdmin, identity.ParseRole("admin"))
	})

	t.Run("any other value maps to user", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"user", "", "ADMIN", "superuser", "操作員"} {
			assert.Equal(t, identity.RoleUser, identity.ParseRole(s), "input %q", s)
		}
	})
}

func TestUser_Label(t *testing.T) {
	t.Parallel()

	t.Run("prefers display name", func(t *testing.T) {
		t.Parallel()
		u := identity.User{Username: "admin", DisplayName: "系統管理員"}
		assert.Equal(t, "系統管理員", u.Label())
	})

	t.Run("falls back to username", func(t *testing.T) {
		t.Parallel()
		u := identity.User{Username: "user"}
		assert.Equal(t, "user", u.Label())
	})
}

func TestUser_WireFormat(t *testing.T) {
	t.Parallel()

	var u identity.User
	raw := `{"username":"admin","display_name":"Admin","role":"admin"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "Admin", u.DisplayName)
	assert.True(t, u.IsAdmin())
}
