// Package store holds the persistence collaborators. The scheduling engine
// and handlers only see the small interfaces here; the gorm-backed
// implementations translate database failures into the apperr taxonomy.
package store

import "salon-booking-server/internal/models"

// AppointmentFilter is a simple field-equality / date-range predicate.
// Zero values mean "no constraint". Dates are YYYY-MM-DD strings, which
// order lexicographically.
type AppointmentFilter struct {
	HairdresserID    string
	Date             string
	FromDate         string
	ToDate           string
	Status           models.AppointmentStatus
	ExcludeCancelled bool
}

// AppointmentStore is the durable home of appointments. Find results are
// sorted by (date, time) ascending with id as the final tie-break.
type AppointmentStore interface {
	Find(filter AppointmentFilter) ([]models.Appointment, error)
	FindByID(id string) (*models.Appointment, error)
	Insert(a *models.Appointment) error
	Update(a *models.Appointment) error
	DeleteByID(id string) error
}

// UserStore is the durable home of users. Users are never physically
// removed; DeactivateByID flips IsActive so historical appointments keep a
// valid creator/hairdresser reference.
type UserStore interface {
	Find(role models.Role, activeOnly bool) ([]models.User, error)
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Insert(u *models.User) error
	Update(u *models.User) error
	DeactivateByID(id string) error
}
