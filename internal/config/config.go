package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageModePostgres = "postgres"
	StorageModeMemory   = "memory"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Storage
	StorageMode string `env:"STORAGE_MODE" default:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis cache (optional; empty addr disables it)
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" default:"1h"`

	// Generative model
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL"`
	GeminiModel   string        `env:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" default:"60s"`

	// Development
	LogLevel    string   `env:"LOG_LEVEL" default:"debug"`
	CORSOrigins []string `env:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		// Missing .env is fine; system env vars still apply.
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Storage
	if err := loadEnvString(&config.StorageMode, "STORAGE_MODE", StorageModePostgres); err != nil {
		return nil, err
	}
	if config.StorageMode != StorageModePostgres && config.StorageMode != StorageModeMemory {
		return nil, fmt.Errorf("invalid STORAGE_MODE %q: must be %q or %q",
			config.StorageMode, StorageModePostgres, StorageModeMemory)
	}
	if err := loadEnvString(&config.DatabaseURL, "DATABASE_URL", ""); err != nil {
		return nil, err
	}
	if config.StorageMode == StorageModePostgres && config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when STORAGE_MODE=%s", StorageModePostgres)
	}

	// Redis
	if err := loadEnvString(&config.RedisAddr, "REDIS_ADDR", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.RedisPassword, "REDIS_PASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.CacheTTL, "CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}

	// Generative model
	if err := loadEnvString(&config.GeminiAPIKey, "GEMINI_API_KEY", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.GeminiBaseURL, "GEMINI_BASE_URL", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.GeminiModel, "GEMINI_MODEL", "gemini-1.5-flash"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.GeminiTimeout, "GEMINI_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "debug"); err != nil {
		return nil, err
	}
	if err := loadEnvStringSlice(&config.CORSOrigins, "CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	value := os.Getenv(key)
	if value == "" {
		*target = defaultValue
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer value for %s: %s", key, value)
	}
	*target = parsed
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	value := os.Getenv(key)
	if value == "" {
		*target = defaultValue
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration value for %s: %s", key, value)
	}
	*target = parsed
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	value := os.Getenv(key)
	if value == "" {
		*target = defaultValue
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	*target = parts
	return nil
}
