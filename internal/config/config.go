package config

import (
	"fmt"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	Database DatabaseConfig

	// History configuration
	History HistoryConfig

	// Debug configuration
	Debug DebugConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string // Path to SQLite database file
}

// HistoryConfig controls recording of readings
type HistoryConfig struct {
	Enabled bool // Store every reading and failure in the database
}

// DebugConfig controls diagnostic tracing
type DebugConfig struct {
	Enabled bool // Emit trace lines to stderr
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "", // Empty means use default ~/.config/kbdleds/kbdleds.db
		},
		History: HistoryConfig{
			Enabled: false,
		},
		Debug: DebugConfig{
			Enabled: false,
		},
	}
}

// Validate checks if the configuration is valid. The database path only
// matters when history is enabled.
func (c *Config) Validate() error {
	if !c.History.Enabled {
		return nil
	}

	if c.Database.Path != "" && !filepath.IsAbs(c.Database.Path) {
		return fmt.Errorf("database path must be absolute, got %q", c.Database.Path)
	}

	return nil
}

// SetDatabasePath sets the database path with validation
func (c *Config) SetDatabasePath(path string) error {
	if path != "" && !filepath.IsAbs(path) {
		return fmt.Errorf("database path must be absolute, got %q", path)
	}
	c.Database.Path = path
	return nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  Database:
    Path: %s
  History:
    Enabled: %v
  Debug:
    Enabled: %v`,
		c.Database.Path,
		c.History.Enabled,
		c.Debug.Enabled,
	)
}
