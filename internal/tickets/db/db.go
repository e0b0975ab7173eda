package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"museum-api/internal/models"
	"museum-api/internal/types"
)

type DB struct {
	Bun *bun.DB
}

// CreatePurchase inserts the completed purchase. Purchases are immutable;
// this is the only write on the table.
func (d *DB) CreatePurchase(purchase models.TicketPurchase) error {
	_, err := d.Bun.NewInsert().
		Model(&purchase).
		Exec(context.Background())
	return err
}

func (d *DB) GetPurchaseByID(id uuid.UUID) (*models.TicketPurchase, error) {
	var purchase models.TicketPurchase
	err := d.Bun.NewSelect().
		Model(&purchase).
		Where("purchase_id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// MuseumOpenOn checks whether an hours record exists for the date.
func (d *DB) MuseumOpenOn(date types.Date) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.MuseumHours)(nil)).
		Where("date = ?", date).
		Exists(context.Background())
}

// GetEventByID fetches the event without its dates; the purchase flow
// only needs the current price and name.
func (d *DB) GetEventByID(id uuid.UUID) (*models.SpecialEvent, error) {
	var event models.SpecialEvent
	err := d.Bun.NewSelect().
		Model(&event).
		Where("event_id = ?", id).
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

// EventScheduledOn checks whether the event runs on the date.
func (d *DB) EventScheduledOn(id uuid.UUID, date types.Date) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.SpecialEventDate)(nil)).
		Where("event_id = ?", id).
		Where("date = ?", date).
		Exists(context.Background())
}
