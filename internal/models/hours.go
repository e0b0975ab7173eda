package models

import (
	"github.com/uptrace/bun"

	"museum-api/internal/types"
)

// MuseumHours records that the museum is open on a given date. Absence of
// a row for a date means the museum is closed that day.
type MuseumHours struct {
	bun.BaseModel `bun:"table:museum_hours,alias:mh"`

	Date       types.Date      `bun:"date,pk,type:date" json:"date"`
	TimeOpen   types.TimeOfDay `bun:"time_open,notnull,type:varchar(5)" json:"timeOpen"`
	TimeClosed types.TimeOfDay `bun:"time_closed,notnull,type:varchar(5)" json:"timeClosed"`
}

// CreateHoursRequest is the admin payload for opening the museum on a date.
// Both times are required; pointers distinguish absent from zero.
type CreateHoursRequest struct {
	Date       types.Date       `json:"date"`
	TimeOpen   *types.TimeOfDay `json:"timeOpen"`
	TimeClosed *types.TimeOfDay `json:"timeClosed"`
}
