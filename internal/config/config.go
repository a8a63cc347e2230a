package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port             string
	Origin           string
	Environment      string
	TokenSecret      string
	AuthCookieName   string
	AuthCookieMaxAge int // seconds
	Database         DatabaseConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "salon"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	// The auth cookie is the only place credential lifetime is enforced; the
	// token itself carries no expiry claim.
	cookieDays, err := strconv.Atoi(getEnv("AUTH_COOKIE_MAX_AGE_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_COOKIE_MAX_AGE_DAYS: %w", err)
	}

	return &Config{
		Port:             getEnv("PORT", "3001"),
		Origin:           getEnv("ORIGIN", "http://localhost:3000"),
		Environment:      getEnv("APP_ENV", "development"),
		TokenSecret:      getEnv("TOKEN_SECRET", "default_token_secret"),
		AuthCookieName:   getEnv("AUTH_COOKIE_NAME", "auth-token"),
		AuthCookieMaxAge: cookieDays * 24 * 60 * 60,
		Database:         dbConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
