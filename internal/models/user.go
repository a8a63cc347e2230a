package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleHairdresser Role = "hairdresser"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleHairdresser
}

// User represents a user in the system. Hairdressers are the bookable
// resources on the calendar; admins run the shop. The capability flags are
// independent of role, but admins are treated as holding both regardless of
// what is stored.
type User struct {
	BaseModel
	Name                  string `gorm:"size:100;not null" json:"name"`
	Email                 string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password              string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role                  Role   `gorm:"size:20;default:'hairdresser'" json:"role"`
	CanCreateAppointments bool   `gorm:"default:false" json:"canCreateAppointments"`
	CanModifyAppointments bool   `gorm:"default:false" json:"canModifyAppointments"`
	IsActive              bool   `gorm:"default:true" json:"isActive"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Role                  Role      `json:"role"`
	CanCreateAppointments bool      `json:"canCreateAppointments"`
	CanModifyAppointments bool      `json:"canModifyAppointments"`
	IsActive              bool      `json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:                    u.ID,
		Name:                  u.Name,
		Email:                 u.Email,
		Role:                  u.Role,
		CanCreateAppointments: u.CanCreateAppointments,
		CanModifyAppointments: u.CanModifyAppointments,
		IsActive:              u.IsActive,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}
