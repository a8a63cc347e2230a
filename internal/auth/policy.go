package auth

import "salon-booking-server/internal/models"

// Action is something a credential holder may ask to do.
type Action string

const (
	ActionReadOwnAppointments Action = "read-own-appointments"
	ActionReadAllAppointments Action = "read-all-appointments"
	ActionCreateAppointment   Action = "create-appointment"
	ActionModifyAppointment   Action = "modify-appointment"
	ActionManageUsers         Action = "manage-users"
)

// Authorize is the single allow/deny decision for the whole server. Every
// entry point calls it exactly once per action instead of repeating ad hoc
// role comparisons. Admins supersede both capability flags.
func Authorize(claims *Claims, action Action) bool {
	if claims == nil {
		return false
	}

	switch action {
	case ActionManageUsers:
		return claims.Role == models.RoleAdmin
	case ActionCreateAppointment:
		return claims.Role == models.RoleAdmin || claims.CanCreateAppointments
	case ActionModifyAppointment:
		// Covers edit, status changes, cancellation and deletion.
		return claims.Role == models.RoleAdmin || claims.CanModifyAppointments
	case ActionReadAllAppointments:
		return claims.Role == models.RoleAdmin || claims.Role == models.RoleHairdresser
	case ActionReadOwnAppointments:
		return true
	}
	return false
}

// ScopedToOwn reports whether the claims holder's reads must be narrowed to
// appointments on their own calendar (hairdresserId = userId).
func ScopedToOwn(claims *Claims) bool {
	return claims != nil && claims.Role != models.RoleAdmin
}
