package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("accepts the closed role set", func(t *testing.T) {
		for _, s := range []string{"buyer", "seller", "service_provider", "admin"} {
			role, err := ParseRole(s)
			require.NoError(t, err)
			assert.Equal(t, Role(s), role)
			assert.True(t, role.Valid())
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		_, err := ParseRole("partner")
		assert.Error(t, err)

		_, err = ParseRole("")
		assert.Error(t, err)

		assert.False(t, Role("auditor").Valid())
	})
}

func TestRoleFromLabel(t *testing.T) {
	t.Run("maps the partner label to service_provider", func(t *testing.T) {
		role, err := RoleFromLabel("partner")
		require.NoError(t, err)
		assert.Equal(t, RoleServiceProvider, role)
	})

	t.Run("canonical names pass through", func(t *testing.T) {
		role, err := RoleFromLabel("seller")
		require.NoError(t, err)
		assert.Equal(t, RoleSeller, role)

		role, err = RoleFromLabel("service_provider")
		require.NoError(t, err)
		assert.Equal(t, RoleServiceProvider, role)
	})

	t.Run("unknown labels error", func(t *testing.T) {
		_, err := RoleFromLabel("landlord")
		assert.Error(t, err)
	})
}
