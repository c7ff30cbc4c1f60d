package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/actionsum/kbdleds/internal/config"
	"github.com/actionsum/kbdleds/internal/database"
	"github.com/actionsum/kbdleds/internal/reader"
	"github.com/actionsum/kbdleds/pkg/detector"
	"github.com/actionsum/kbdleds/pkg/indicator"
	"github.com/actionsum/kbdleds/pkg/integrations/x11"
)

const appName = "kbdleds"

func main() {
	os.Exit(run(config.New(), detector.New, os.Stdout, os.Stderr))
}

// run prints the indicator state to stdout, or a single error line to
// stderr, and returns the process exit status.
func run(cfg *config.Config, open indicator.Opener, stdout, stderr io.Writer) int {
	setupLogging(cfg, stderr)

	log.Printf("Configuration:\n%s", cfg.String())

	var repo *database.Repository
	if cfg.History.Enabled {
		db, err := openHistory(cfg)
		if err != nil {
			log.Printf("History disabled: %v", err)
		} else {
			defer db.Close()
			repo = database.NewRepository(db)
		}
	}

	svc := reader.NewService(cfg, open, repo)
	state, err := svc.ReadOnce()
	if err != nil {
		var indErr *indicator.Error
		if errors.As(err, &indErr) && indErr.Cause() != nil {
			log.Printf("%s: %v", indErr.Kind.Name(), indErr.Cause())
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, state)
	return 0
}

// setupLogging routes trace output to stderr in debug mode and discards it otherwise
func setupLogging(cfg *config.Config, stderr io.Writer) {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")

	out := io.Discard
	if cfg.Debug.Enabled {
		out = stderr
	}
	log.SetOutput(out)
	x11.SetLogOutput(out)
}

// openHistory opens the history database. Its failures never reach the user.
func openHistory(cfg *config.Config) (*database.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := db.Initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
