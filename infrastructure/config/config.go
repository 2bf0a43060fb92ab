// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage drivers selectable via STORAGE_DRIVER.
const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Storage configuration
	StorageDriver string
	AWSRegion     string
	TableName     string

	// Logging
	LogLevel string

	// Authentication
	JWTSecret      string
	JWTIssuer      string
	JWTTTL         time.Duration
	BcryptCost     int
	AdminPassword  string // bootstrap password for the seeded admin inspector
	SeedInspectors bool

	// Dashboard behavior: abort the summary when a per-status query fails,
	// instead of degrading to a partial count.
	DashboardFailFast bool

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", StorageMemory),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		TableName:     getEnv("TABLE_NAME", "pha-inspections"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTIssuer:      getEnv("JWT_ISSUER", "pha-inspection-system"),
		JWTTTL:         getEnvDuration("JWT_TTL", 24*time.Hour),
		BcryptCost:     getEnvInt("BCRYPT_COST", 10),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		SeedInspectors: getEnvBool("SEED_INSPECTORS", true),

		DashboardFailFast: getEnvBool("DASHBOARD_FAIL_FAST", true),

		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent and that
// production carries no development defaults.
func (c *Config) Validate() error {
	if c.StorageDriver != StorageDynamoDB && c.StorageDriver != StorageMemory {
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q", StorageDynamoDB, StorageMemory)
	}
	if c.IsProduction() {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.StorageDriver != StorageDynamoDB {
			return fmt.Errorf("STORAGE_DRIVER must be %q in production", StorageDynamoDB)
		}
		if c.TableName == "" {
			return fmt.Errorf("TABLE_NAME is required in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
