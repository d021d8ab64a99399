package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the application.
// It is built once in main and passed down explicitly.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret     string
	TokenValidity time.Duration

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load builds a Config from the environment. JWT_SECRET and DATABASE_URL have
// no fallback: a missing value fails startup instead of running insecure.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL not set in environment")
	}

	return &Config{
		Port:          GetEnv("PORT", "8080"),
		DatabaseURL:   dbURL,
		JWTSecret:     secret,
		TokenValidity: 24 * time.Hour,
		AdminEmail:    GetEnv("ADMIN_EMAIL", "admin@innovatehub.com"),
		AdminPassword: GetEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:     GetEnv("ADMIN_NAME", "Admin Innovate"),
	}, nil
}
