package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/adityapatri279312/excel-data-analyzer/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig
	Database DatabaseConfig
	Server   ServerConfig
	Output   OutputConfig
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string
	Format string // "console" or "json"
}

// DatabaseConfig holds the optional run-ledger connection
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds report preview server settings
type ServerConfig struct {
	Port int
}

// OutputConfig holds the default output location
type OutputConfig struct {
	Dir string
}

// Load reads configuration from a .env file (when present) and the
// environment. Every setting has a usable default; only malformed values
// are errors.
func Load() (*Config, error) {
	// Missing .env is fine; system environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "console"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Output: OutputConfig{
			Dir: envOr("OUTPUT_DIR", "report_output"),
		},
	}

	port, err := envIntOr("PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port < 1 || port > 65535 {
		return nil, errors.ConfigInvalid(fmt.Sprintf("PORT %d outside 1-65535", port))
	}
	cfg.Server.Port = port

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", key, v)
	}
	return n, nil
}
