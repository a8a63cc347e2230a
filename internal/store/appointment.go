package store

import (
	"errors"

	"gorm.io/gorm"

	"salon-booking-server/internal/apperr"
	"salon-booking-server/internal/models"
)

// GormAppointmentStore implements AppointmentStore on a gorm connection.
type GormAppointmentStore struct {
	DB *gorm.DB
}

// NewAppointmentStore creates a gorm-backed appointment store.
func NewAppointmentStore(db *gorm.DB) *GormAppointmentStore {
	return &GormAppointmentStore{DB: db}
}

// Find returns appointments matching the filter, sorted by (date, time, id).
func (s *GormAppointmentStore) Find(filter AppointmentFilter) ([]models.Appointment, error) {
	query := s.DB.Model(&models.Appointment{})

	if filter.HairdresserID != "" {
		query = query.Where("hairdresser_id = ?", filter.HairdresserID)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.FromDate != "" {
		query = query.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("date <= ?", filter.ToDate)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ExcludeCancelled {
		query = query.Where("status <> ?", models.StatusCancelled)
	}

	var appointments []models.Appointment
	if err := query.Order("date asc, time asc, id asc").Find(&appointments).Error; err != nil {
		return nil, apperr.Storef("find appointments", err)
	}
	return appointments, nil
}

// FindByID returns one appointment or apperr.ErrNotFound.
func (s *GormAppointmentStore) FindByID(id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.DB.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storef("find appointment", err)
	}
	return &appointment, nil
}

// Insert persists a new appointment. A duplicate-key rejection from the
// database (the deployment's serialization point for concurrent bookings)
// surfaces as the same conflict error as the engine's pre-check.
func (s *GormAppointmentStore) Insert(a *models.Appointment) error {
	if err := s.DB.Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Storef("insert appointment", err)
	}
	return nil
}

// Update saves the full appointment record.
func (s *GormAppointmentStore) Update(a *models.Appointment) error {
	if err := s.DB.Save(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Storef("update appointment", err)
	}
	return nil
}

// DeleteByID physically removes an appointment; apperr.ErrNotFound when the
// id does not exist.
func (s *GormAppointmentStore) DeleteByID(id string) error {
	result := s.DB.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Storef("delete appointment", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
