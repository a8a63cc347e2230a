package store

import (
	"errors"

	"gorm.io/gorm"

	"salon-booking-server/internal/apperr"
	"salon-booking-server/internal/models"
)

// GormUserStore implements UserStore on a gorm connection.
type GormUserStore struct {
	DB *gorm.DB
}

// NewUserStore creates a gorm-backed user store.
func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

// Find lists users, optionally filtered by role and active flag.
func (s *GormUserStore) Find(role models.Role, activeOnly bool) ([]models.User, error) {
	query := s.DB.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var users []models.User
	if err := query.Order("name asc").Find(&users).Error; err != nil {
		return nil, apperr.Storef("find users", err)
	}
	return users, nil
}

// FindByID returns one user or apperr.ErrNotFound.
func (s *GormUserStore) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storef("find user", err)
	}
	return &user, nil
}

// FindByEmail returns one user or apperr.ErrNotFound. Email comparison is
// case-insensitive under MySQL's default collation.
func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storef("find user by email", err)
	}
	return &user, nil
}

// Insert persists a new user; a duplicate email surfaces as ErrConflict.
func (s *GormUserStore) Insert(u *models.User) error {
	if err := s.DB.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Storef("insert user", err)
	}
	return nil
}

// Update saves the full user record.
func (s *GormUserStore) Update(u *models.User) error {
	if err := s.DB.Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Storef("update user", err)
	}
	return nil
}

// DeactivateByID soft-deletes a user by flipping IsActive off.
func (s *GormUserStore) DeactivateByID(id string) error {
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return apperr.Storef("deactivate user", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
