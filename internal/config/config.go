package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	CORS    CORSConfig
	Upload  UploadConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// StorageConfig holds database and data-directory configuration.
// DataDir is where the most recent prices CSV is persisted verbatim.
type StorageConfig struct {
	DatabasePath string
	DataDir      string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// UploadConfig holds upload-audit configuration. RetentionDays bounds
// how long audit rows are kept before the daily prune removes them.
type UploadConfig struct {
	RetentionDays int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	retentionDays, err := strconv.Atoi(getEnv("UPLOAD_RETENTION_DAYS", "90"))
	if err != nil || retentionDays < 1 {
		return nil, fmt.Errorf("invalid UPLOAD_RETENTION_DAYS: %q", os.Getenv("UPLOAD_RETENTION_DAYS"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("DB_PATH", "./data/etf_analyzer.db"),
			DataDir:      getEnv("DATA_DIR", "./data/uploads"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Upload: UploadConfig{
			RetentionDays: retentionDays,
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
