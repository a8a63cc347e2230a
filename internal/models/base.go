package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// InitDB initializes database connection
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	// Connect to MySQL database. TranslateError is on so duplicate-key
	// rejections come back as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto migrate the database models
	err = db.AutoMigrate(
		&User{},
		&Appointment{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
