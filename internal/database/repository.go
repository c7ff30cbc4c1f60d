package database

import (
	"time"

	"github.com/actionsum/kbdleds/internal/models"

	"github.com/pkg/errors"

	"gorm.io/gorm"
)

// Repository handles all database operations for indicator readings
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// CreateReading inserts a new reading into the database
func (r *Repository) CreateReading(reading *models.Reading) error {
	result := r.db.Create(reading)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert reading")
	}
	return nil
}

// CreateErrorLog inserts a new error log into the database
func (r *Repository) CreateErrorLog(errorLog *models.ErrorLog) error {
	result := r.db.Create(errorLog)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert error log")
	}
	return nil
}

// GetLatest retrieves the most recent reading, or nil if none exist
func (r *Repository) GetLatest() (*models.Reading, error) {
	var reading models.Reading
	result := r.db.Order("timestamp DESC").Order("id DESC").First(&reading)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "failed to get latest reading")
	}
	return &reading, nil
}

// CountReadings returns the number of readings taken since a given time
func (r *Repository) CountReadings(since time.Time) (int64, error) {
	var count int64
	result := r.db.Model(&models.Reading{}).Where("timestamp >= ?", since).Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to count readings")
	}
	return count, nil
}

// GetErrorLogsSince retrieves error logs recorded since a given time
func (r *Repository) GetErrorLogsSince(since time.Time) ([]*models.ErrorLog, error) {
	var logs []*models.ErrorLog
	result := r.db.Where("timestamp >= ?", since).Order("timestamp ASC").Find(&logs)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query error logs")
	}
	return logs, nil
}

// Clear removes all readings and error logs from the database
func (r *Repository) Clear() error {
	if result := r.db.Exec("DELETE FROM readings"); result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear readings")
	}
	if result := r.db.Exec("DELETE FROM error_logs"); result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear error logs")
	}
	return nil
}
