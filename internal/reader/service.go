package reader

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/actionsum/kbdleds/internal/config"
	"github.com/actionsum/kbdleds/internal/database"
	"github.com/actionsum/kbdleds/internal/models"
	"github.com/actionsum/kbdleds/pkg/detector"
	"github.com/actionsum/kbdleds/pkg/indicator"
)

type Service struct {
	config *config.Config
	open   indicator.Opener
	repo   *database.Repository
}

// NewService creates a reader. Readings are recorded only when history is
// enabled and repo is non-nil.
func NewService(cfg *config.Config, open indicator.Opener, repo *database.Repository) *Service {
	return &Service{
		config: cfg,
		open:   open,
		repo:   repo,
	}
}

// ReadOnce opens the default display, fetches the keyboard control state and
// decodes it. The first failure ends the chain.
func (s *Service) ReadOnce() (indicator.State, error) {
	state, displayServer, err := s.readOnce()
	if err != nil {
		s.storeError(err)
		return indicator.State{}, err
	}

	s.storeReading(state, displayServer)
	return state, nil
}

func (s *Service) readOnce() (indicator.State, string, error) {
	source, err := s.open("")
	if err != nil {
		return indicator.State{}, "", err
	}
	defer func() {
		if err := source.Close(); err != nil {
			log.Printf("Error closing keyboard source: %v", err)
		}
	}()

	raw, err := source.KeyboardControl()
	if err != nil {
		return indicator.State{}, "", err
	}

	state, err := indicator.Decode(raw)
	if err != nil {
		return indicator.State{}, "", err
	}

	return state, source.GetDisplayServer(), nil
}

func (s *Service) recording() bool {
	return s.repo != nil && s.config.History.Enabled
}

func (s *Service) storeReading(state indicator.State, displayServer string) {
	if !s.recording() {
		return
	}

	reading := &models.Reading{
		Timestamp:     time.Now(),
		LedMask:       state.Mask(),
		CapsLock:      state.CapsLock,
		NumLock:       state.NumLock,
		DisplayServer: displayServer,
		SessionType:   detector.DetectDisplayServer(),
	}

	if err := s.repo.CreateReading(reading); err != nil {
		log.Printf("Failed to store reading: %v", err)
	}
}

func (s *Service) storeError(err error) {
	if !s.recording() {
		return
	}

	kind := "Unknown"
	msg := err.Error()
	var indErr *indicator.Error
	if errors.As(err, &indErr) {
		kind = indErr.Kind.Name()
		if indErr.Err != nil {
			msg = fmt.Sprintf("%s: %v", msg, indErr.Err)
		}
	}

	errorLog := &models.ErrorLog{
		Timestamp: time.Now(),
		Kind:      kind,
		ErrorMsg:  msg,
	}

	if dbErr := s.repo.CreateErrorLog(errorLog); dbErr != nil {
		log.Printf("Failed to store error in database: %v (original error: %v)", dbErr, err)
	} else {
		log.Printf("Error logged to database: %v", err)
	}
}
