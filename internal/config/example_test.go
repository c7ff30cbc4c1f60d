package config_test

import (
	"fmt"

	"github.com/actionsum/kbdleds/internal/config"
)

// Example of creating a default configuration
func ExampleDefault() {
	cfg := config.Default()
	fmt.Println("History:", cfg.History.Enabled)
	fmt.Println("Debug:", cfg.Debug.Enabled)
	// Output:
	// History: false
	// Debug: false
}

// Example of setting the database path with validation
func ExampleConfig_SetDatabasePath() {
	cfg := config.Default()

	// Valid path
	if err := cfg.SetDatabasePath("/var/lib/kbdleds/history.db"); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Database path set to:", cfg.Database.Path)
	}

	// Invalid path (relative)
	if err := cfg.SetDatabasePath("history.db"); err != nil {
		fmt.Println("Error:", err)
	}

	// Output:
	// Database path set to: /var/lib/kbdleds/history.db
	// Error: database path must be absolute, got "history.db"
}

// Example of validating configuration
func ExampleConfig_Validate() {
	cfg := config.Default()

	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
	} else {
		fmt.Println("Configuration is valid")
	}

	// Output:
	// Configuration is valid
}
