package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Store backends selectable via FITWEEK_STORE.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Persistence
	StoreBackend string
	DataDir      string
	DataFile     string
	DatabasePath string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dataDir := getEnv("FITWEEK_DATA_DIR", defaultDataDir())

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", ""),

		StoreBackend: getEnv("FITWEEK_STORE", StoreFile),
		DataDir:      dataDir,
		DataFile:     getEnv("FITWEEK_DATA_FILE", filepath.Join(dataDir, "weeks.json")),
		DatabasePath: getEnv("FITWEEK_DB_PATH", filepath.Join(dataDir, "fitweek.db")),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fitweek"
	}
	return filepath.Join(home, ".fitweek")
}
