package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"museum-api/internal/database"
	"museum-api/internal/models"
	"museum-api/internal/types"
)

type DB struct {
	Bun *bun.DB
}

// GetHoursByDate returns the hours for a date, or nil when the museum is
// closed. A closed date is not an error.
func (d *DB) GetHoursByDate(date types.Date) (*models.MuseumHours, error) {
	var hours models.MuseumHours
	err := d.Bun.NewSelect().
		Model(&hours).
		Where("date = ?", date).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (d *DB) GetHoursByRange(start, end types.Date) ([]models.MuseumHours, error) {
	hours := make([]models.MuseumHours, 0)
	err := d.Bun.NewSelect().
		Model(&hours).
		Where("date >= ?", start).
		Where("date <= ?", end).
		Order("date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (d *DB) GetAllHours() ([]models.MuseumHours, error) {
	hours := make([]models.MuseumHours, 0)
	err := d.Bun.NewSelect().
		Model(&hours).
		Order("date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return hours, nil
}

// CreateHours inserts one open-day record. The date is the primary key,
// so a concurrent create for the same date loses here and surfaces as
// the domain conflict.
func (d *DB) CreateHours(hours models.MuseumHours) error {
	_, err := d.Bun.NewInsert().
		Model(&hours).
		Exec(context.Background())
	if database.IsUniqueViolation(err) {
		return models.ErrHoursAlreadyConfigured
	}
	return err
}
