package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver   string // "sqlite" or "postgres"
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Ledger engine
	WeekStart    time.Weekday // first day of the "this week" filter window
	LedgerStrict bool         // strict mode: update/delete of a missing id is an error
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "siteledger.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "siteledger"),
		DBPassword: getEnv("DB_PASSWORD", "siteledger"),
		DBName:     getEnv("DB_NAME", "siteledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Ledger engine
		WeekStart:    parseWeekStart(getEnv("WEEK_START", "monday")),
		LedgerStrict: getEnv("LEDGER_STRICT", "false") == "true",
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// parseWeekStart maps a weekday name to time.Weekday, defaulting to Monday.
func parseWeekStart(value string) time.Weekday {
	switch strings.ToLower(value) {
	case "sunday":
		return time.Sunday
	case "saturday":
		return time.Saturday
	case "monday":
		return time.Monday
	default:
		log.Printf("Warning: invalid WEEK_START value '%s', falling back to monday\n", value)
		return time.Monday
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
