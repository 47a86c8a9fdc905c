package staff_test

import (
	"testing"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaff(t *testing.T, role staff.Role) *staff.Staff {
	t.Helper()

	s, err := staff.NewStaff(
		kernel.NewUUID(), "mgarcia", "Maria Garcia", "correct horse battery", role, time.Now().UTC())
	require.NoError(t, err)
	return s
}

func TestNewStaff(t *testing.T) {
	t.Run("should create active account with hashed password", func(t *testing.T) {
		s := newStaff(t, staff.RoleWaiter)

		require.NoError(t, s.Validate())
		assert.Equal(t, "mgarcia", s.Username())
		assert.Equal(t, staff.RoleWaiter, s.Role())
		assert.True(t, s.IsActive())
		assert.NotEmpty(t, s.PasswordHash())
		assert.NotContains(t, s.PasswordHash(), "correct horse battery")
	})

	t.Run("should fail with empty username", func(t *testing.T) {
		s, err := staff.NewStaff(
			kernel.NewUUID(), "", "Maria Garcia", "correct horse battery", staff.RoleWaiter, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with short password", func(t *testing.T) {
		s, err := staff.NewStaff(
			kernel.NewUUID(), "mgarcia", "Maria Garcia", "short", staff.RoleWaiter, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with unspecified role", func(t *testing.T) {
		s, err := staff.NewStaff(
			kernel.NewUUID(), "mgarcia", "Maria Garcia", "correct horse battery", staff.RoleUnspecified, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestStaff_CheckPassword(t *testing.T) {
	s := newStaff(t, staff.RoleKitchen)

	t.Run("accepts the original password", func(t *testing.T) {
		assert.NoError(t, s.CheckPassword("correct horse battery"))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		err := s.CheckPassword("wrong password")

		require.Error(t, err)
		assert.ErrorIs(t, err, staff.ErrPasswordMismatch)
	})
}

func TestStaff_ChangePassword(t *testing.T) {
	s := newStaff(t, staff.RoleWaiter)

	require.NoError(t, s.ChangePassword("a brand new secret"))

	assert.NoError(t, s.CheckPassword("a brand new secret"))
	assert.Error(t, s.CheckPassword("correct horse battery"))
}

func TestRestoreStaff(t *testing.T) {
	t.Run("should rehydrate with stored hash and flag", func(t *testing.T) {
		original := newStaff(t, staff.RoleManagement)
		original.Deactivate()

		restored, err := staff.RestoreStaff(
			original.ID(), original.Username(), original.DisplayName(), original.PasswordHash(),
			original.Role(), original.IsActive(), original.CreatedAt())

		require.NoError(t, err)
		assert.False(t, restored.IsActive())
		assert.NoError(t, restored.CheckPassword("correct horse battery"))
	})

	t.Run("should fail with empty hash", func(t *testing.T) {
		restored, err := staff.RestoreStaff(
			kernel.NewUUID(), "mgarcia", "Maria Garcia", "", staff.RoleWaiter, true, time.Now().UTC())

		require.Error(t, err)
		assert.Nil(t, restored)
	})
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		want    staff.Role
		wantErr bool
	}{
		{name: "Waiter", want: staff.RoleWaiter},
		{name: "Kitchen", want: staff.RoleKitchen},
		{name: "Management", want: staff.RoleManagement},
		{name: "Admin", want: staff.RoleAdmin},
		{name: "Unspecified", wantErr: true},
		{name: "waiter", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("parse "+tt.name, func(t *testing.T) {
			got, err := staff.ParseRole(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, staff.RoleUnspecified, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_Permissions(t *testing.T) {
	assert.True(t, staff.RoleWaiter.CanServe())
	assert.False(t, staff.RoleWaiter.CanCook())
	assert.False(t, staff.RoleWaiter.CanManage())

	assert.True(t, staff.RoleKitchen.CanCook())
	assert.False(t, staff.RoleKitchen.CanServe())

	assert.True(t, staff.RoleManagement.CanManage())
	assert.False(t, staff.RoleManagement.CanCook())

	assert.True(t, staff.RoleAdmin.CanServe())
	assert.True(t, staff.RoleAdmin.CanCook())
	assert.True(t, staff.RoleAdmin.CanManage())
}
