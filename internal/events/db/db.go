package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"museum-api/internal/database"
	"museum-api/internal/models"
	"museum-api/internal/types"
)

type DB struct {
	Bun *bun.DB
}

// GetEventByID fetches one event with its dates, or nil when unknown.
func (d *DB) GetEventByID(id uuid.UUID) (*models.SpecialEvent, error) {
	var event models.SpecialEvent
	err := d.Bun.NewSelect().
		Model(&event).
		Relation("Dates").
		Where("se.event_id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DB) GetAllEvents() ([]models.SpecialEvent, error) {
	events := make([]models.SpecialEvent, 0)
	err := d.Bun.NewSelect().
		Model(&events).
		Relation("Dates").
		Order("event_name ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventsByDate returns events that run on the given date, each with
// its full date set.
func (d *DB) GetEventsByDate(date types.Date) ([]models.SpecialEvent, error) {
	events := make([]models.SpecialEvent, 0)
	err := d.Bun.NewSelect().
		Model(&events).
		Relation("Dates").
		Where("EXISTS (SELECT 1 FROM special_event_dates AS d WHERE d.event_id = se.event_id AND d.date = ?)", date).
		Order("event_name ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventsByDateRange returns events with at least one date inside the
// inclusive range.
func (d *DB) GetEventsByDateRange(start, end types.Date) ([]models.SpecialEvent, error) {
	events := make([]models.SpecialEvent, 0)
	err := d.Bun.NewSelect().
		Model(&events).
		Relation("Dates").
		Where("EXISTS (SELECT 1 FROM special_event_dates AS d WHERE d.event_id = se.event_id AND d.date >= ? AND d.date <= ?)", start, end).
		Order("event_name ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent persists one event row plus its initial date rows in a
// single transaction.
func (d *DB) CreateEvent(event models.SpecialEvent, dates []types.Date) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&event).Exec(ctx); err != nil {
			return err
		}
		return insertDates(ctx, tx, event.EventID, dates)
	})
}

// UpdateEvent writes the scalar columns; dates are replaced separately.
func (d *DB) UpdateEvent(event models.SpecialEvent) error {
	_, err := d.Bun.NewUpdate().
		Model(&event).
		Column("event_name", "event_description", "price").
		Where("event_id = ?", event.EventID).
		Exec(context.Background())
	return err
}

// ReplaceEventDates swaps the entire date set for an event: delete-all
// then insert-all inside one transaction, so readers never observe a
// partial set.
func (d *DB) ReplaceEventDates(id uuid.UUID, dates []types.Date) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.SpecialEventDate)(nil)).
			Where("event_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		return insertDates(ctx, tx, id, dates)
	})
}

// DeleteEvent removes the event and all its date rows.
func (d *DB) DeleteEvent(id uuid.UUID) error {
	return d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.SpecialEventDate)(nil)).
			Where("event_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*models.SpecialEvent)(nil)).
			Where("event_id = ?", id).
			Exec(ctx)
		return err
	})
}

// AddEventDate inserts a single (event, date) pair. The composite
// primary key arbitrates concurrent adds of the same pair.
func (d *DB) AddEventDate(id uuid.UUID, date types.Date) error {
	eventDate := models.SpecialEventDate{EventID: id, Date: date}
	_, err := d.Bun.NewInsert().
		Model(&eventDate).
		Exec(context.Background())
	if database.IsUniqueViolation(err) {
		return models.ErrDuplicateEventDate
	}
	return err
}

// RemoveEventDate deletes a single (event, date) pair; removing a date
// that was never scheduled is the domain conflict.
func (d *DB) RemoveEventDate(id uuid.UUID, date types.Date) error {
	res, err := d.Bun.NewDelete().
		Model((*models.SpecialEventDate)(nil)).
		Where("event_id = ?", id).
		Where("date = ?", date).
		Exec(context.Background())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrEventDateNotScheduled
	}
	return nil
}

func insertDates(ctx context.Context, tx bun.Tx, id uuid.UUID, dates []types.Date) error {
	if len(dates) == 0 {
		return nil
	}
	rows := make([]models.SpecialEventDate, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, models.SpecialEventDate{EventID: id, Date: date})
	}
	_, err := tx.NewInsert().Model(&rows).Exec(ctx)
	if database.IsUniqueViolation(err) {
		return models.ErrDuplicateEventDate
	}
	return err
}
