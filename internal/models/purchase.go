package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"museum-api/internal/types"
)

// TicketPurchase is the immutable record of a completed purchase. A nil
// EventID means general admission.
type TicketPurchase struct {
	bun.BaseModel `bun:"table:ticket_purchases,alias:tp"`

	PurchaseID   uuid.UUID       `bun:"purchase_id,pk,type:uuid"`
	VisitDate    types.Date      `bun:"visit_date,notnull,type:date"`
	Quantity     int             `bun:"quantity,notnull"`
	TotalCost    decimal.Decimal `bun:"total_cost,notnull,type:numeric(10,2)"`
	EventID      *uuid.UUID      `bun:"event_id,type:uuid,nullzero"`
	PurchaseDate time.Time       `bun:"purchase_date,notnull"`
}

type PurchaseRequest struct {
	VisitDate types.Date `json:"visitDate"`
	Quantity  int        `json:"quantity"`
	EventID   *uuid.UUID `json:"eventId"`
}

type PurchaseResponse struct {
	PurchaseID   uuid.UUID       `json:"purchaseId"`
	VisitDate    types.Date      `json:"visitDate"`
	Quantity     int             `json:"quantity"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	EventID      *uuid.UUID      `json:"eventId,omitempty"`
	EventName    *string         `json:"eventName,omitempty"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	QRCode       []byte          `json:"qrCode,omitempty"`
}
