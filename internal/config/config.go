// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/cjjknight/baby-feeding/internal/logger"
	"github.com/cjjknight/baby-feeding/internal/models"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath    string
	ContactsPath    string
	IntervalHours   int // fallback when nothing is persisted yet
	TickInterval    time.Duration
	ReminderEnabled bool
}

// Default values
const (
	defaultIntervalHours = 3
	defaultTickInterval  = time.Second
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	logger.SetDebug(getEnvBool("BF_DEBUG", false))

	cfg := &Config{
		DatabasePath:    getEnvString("BF_DATABASE_PATH", getDefaultDatabasePath()),
		ContactsPath:    getEnvString("BF_CONTACTS_PATH", getDefaultContactsPath()),
		IntervalHours:   getEnvInt("BF_FEEDING_INTERVAL", defaultIntervalHours),
		TickInterval:    getEnvDuration("BF_TICK_INTERVAL", defaultTickInterval),
		ReminderEnabled: getEnvBool("BF_REMINDER", true),
	}

	cfg.IntervalHours = models.ClampInterval(cfg.IntervalHours)

	// Ensure database directory exists
	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	// Ensure contacts directory exists
	if err := ensureDir(filepath.Dir(cfg.ContactsPath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "baby-feeding", ".env"),
			filepath.Join(home, ".baby-feeding", ".env"),
		)
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "feedings.db"
	}
	return filepath.Join(home, ".config", "baby-feeding", "feedings.db")
}

// getDefaultContactsPath returns the default path for the contacts JSON file.
func getDefaultContactsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "contacts.json"
	}
	return filepath.Join(home, ".config", "baby-feeding", "contacts.json")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
