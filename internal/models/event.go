package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"museum-api/internal/types"
)

type SpecialEvent struct {
	bun.BaseModel `bun:"table:special_events,alias:se"`

	EventID     uuid.UUID       `bun:"event_id,pk,type:uuid"`
	Name        string          `bun:"event_name,notnull"`
	Description string          `bun:"event_description,notnull"`
	Price       decimal.Decimal `bun:"price,notnull,type:numeric(10,2)"`

	Dates []SpecialEventDate `bun:"rel:has-many,join:event_id=event_id"`
}

// SpecialEventDate is one calendar date on which an event runs.
// (event_id, date) is the primary key; an event cannot be scheduled twice
// on the same day.
type SpecialEventDate struct {
	bun.BaseModel `bun:"table:special_event_dates,alias:sed"`

	EventID uuid.UUID  `bun:"event_id,pk,type:uuid"`
	Date    types.Date `bun:"date,pk,type:date"`
}

// SpecialEventResponse is the projection returned by every event read and
// mutation. Dates are always sorted ascending.
type SpecialEventResponse struct {
	EventID     uuid.UUID       `json:"eventId"`
	Name        string          `json:"eventName"`
	Description string          `json:"eventDescription"`
	Price       decimal.Decimal `json:"price"`
	Dates       []types.Date    `json:"eventDates"`
}

// Projection converts the stored aggregate into its API shape.
func (e *SpecialEvent) Projection() SpecialEventResponse {
	dates := make([]types.Date, 0, len(e.Dates))
	for _, d := range e.Dates {
		dates = append(dates, d.Date)
	}
	return SpecialEventResponse{
		EventID:     e.EventID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Dates:       types.SortDates(dates),
	}
}

type CreateEventRequest struct {
	Name         string          `json:"eventName"`
	Description  string          `json:"eventDescription"`
	Price        decimal.Decimal `json:"price"`
	InitialDates []types.Date    `json:"initialDates"`
}

// UpdateEventRequest carries partial updates. Nil fields are left
// untouched; a non-nil ReplaceDates (even empty) replaces the whole
// date set.
type UpdateEventRequest struct {
	Name         *string          `json:"eventName"`
	Description  *string          `json:"eventDescription"`
	Price        *decimal.Decimal `json:"price"`
	ReplaceDates *[]types.Date    `json:"replaceDates"`
}

type AddEventDateRequest struct {
	Date types.Date `json:"date"`
}
