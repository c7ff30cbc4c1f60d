package config

import (
	"os"
	"strconv"
)

// LoadFromEnv loads configuration from environment variables
// Environment variables override default values
func LoadFromEnv(cfg *Config) {
	// Database configuration
	if dbPath := os.Getenv("KBDLEDS_DB_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// History configuration
	if history := os.Getenv("KBDLEDS_HISTORY"); history != "" {
		if val, err := strconv.ParseBool(history); err == nil {
			cfg.History.Enabled = val
		}
	}

	// Debug configuration
	if debug := os.Getenv("KBDLEDS_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug.Enabled = val
		}
	}
}

// New creates a new Config with default values and loads from environment
func New() *Config {
	cfg := Default()
	LoadFromEnv(cfg)
	return cfg
}
