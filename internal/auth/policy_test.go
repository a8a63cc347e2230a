package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salon-booking-server/internal/models"
)

func claims(role models.Role, canCreate, canModify bool) *Claims {
	return &Claims{
		UserID:                "user-123",
		Email:                 "test@salon.local",
		Role:                  role,
		CanCreateAppointments: canCreate,
		CanModifyAppointments: canModify,
	}
}

func TestAuthorizeNilClaims(t *testing.T) {
	for _, action := range []Action{
		ActionReadOwnAppointments, ActionReadAllAppointments,
		ActionCreateAppointment, ActionModifyAppointment, ActionManageUsers,
	} {
		assert.False(t, Authorize(nil, action), "nil claims allowed %s", action)
	}
}

func TestAuthorizeDecisionTable(t *testing.T) {
	admin := claims(models.RoleAdmin, false, false) // flags irrelevant for admins
	full := claims(models.RoleHairdresser, true, true)
	readOnly := claims(models.RoleHairdresser, false, false)
	creator := claims(models.RoleHairdresser, true, false)
	modifier := claims(models.RoleHairdresser, false, true)

	tests := []struct {
		name   string
		claims *Claims
		action Action
		want   bool
	}{
		{"admin manages users", admin, ActionManageUsers, true},
		{"hairdresser cannot manage users", full, ActionManageUsers, false},

		{"admin creates despite flags", admin, ActionCreateAppointment, true},
		{"creator flag creates", creator, ActionCreateAppointment, true},
		{"modifier flag does not create", modifier, ActionCreateAppointment, false},
		{"no flags no create", readOnly, ActionCreateAppointment, false},

		{"admin modifies despite flags", admin, ActionModifyAppointment, true},
		{"modifier flag modifies", modifier, ActionModifyAppointment, true},
		{"creator flag does not modify", creator, ActionModifyAppointment, false},

		{"admin reads all", admin, ActionReadAllAppointments, true},
		{"hairdresser reads all", readOnly, ActionReadAllAppointments, true},

		{"admin reads own", admin, ActionReadOwnAppointments, true},
		{"hairdresser reads own", readOnly, ActionReadOwnAppointments, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.claims, tt.action))
		})
	}
}

func TestManageUsersOnlyForAdmins(t *testing.T) {
	// For every capability combination, manage-users hinges on role alone.
	for _, canCreate := range []bool{true, false} {
		for _, canModify := range []bool{true, false} {
			assert.True(t, Authorize(claims(models.RoleAdmin, canCreate, canModify), ActionManageUsers))
			assert.False(t, Authorize(claims(models.RoleHairdresser, canCreate, canModify), ActionManageUsers))
		}
	}
}

func TestScopedToOwn(t *testing.T) {
	assert.False(t, ScopedToOwn(claims(models.RoleAdmin, true, true)))
	assert.True(t, ScopedToOwn(claims(models.RoleHairdresser, true, true)))
	assert.False(t, ScopedToOwn(nil))
}
