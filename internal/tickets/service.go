package tickets

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"museum-api/internal/models"
	"museum-api/internal/tickets/qr"
	"museum-api/internal/types"
)

type PurchaseDBLayer interface {
	CreatePurchase(purchase models.TicketPurchase) error
	GetPurchaseByID(id uuid.UUID) (*models.TicketPurchase, error)
	MuseumOpenOn(date types.Date) (bool, error)
	GetEventByID(id uuid.UUID) (*models.SpecialEvent, error)
	EventScheduledOn(id uuid.UUID, date types.Date) (bool, error)
}

type TicketService struct {
	DB                    PurchaseDBLayer
	GeneralAdmissionPrice decimal.Decimal
	QR                    *qr.Generator
}

func NewTicketService(db PurchaseDBLayer, generalAdmissionPrice decimal.Decimal) *TicketService {
	return &TicketService{
		DB:                    db,
		GeneralAdmissionPrice: generalAdmissionPrice,
		QR:                    qr.NewGenerator(),
	}
}

// Purchase validates the request against the schedule and event catalog,
// prices it, and records exactly one purchase row. Nothing is persisted
// until every check has passed.
func (s *TicketService) Purchase(req models.PurchaseRequest) (*models.PurchaseResponse, error) {
	if req.Quantity < 1 {
		return nil, models.ErrQuantityNotPositive
	}
	if req.VisitDate.IsZero() {
		return nil, models.ErrVisitDateRequired
	}

	var unitPrice decimal.Decimal
	var eventName *string

	if req.EventID == nil {
		// General admission: the museum must be open on the visit date.
		open, err := s.DB.MuseumOpenOn(req.VisitDate)
		if err != nil {
			return nil, fmt.Errorf("failed to check hours for %s: %w", req.VisitDate, err)
		}
		if !open {
			return nil, models.ErrMuseumClosed
		}
		unitPrice = s.GeneralAdmissionPrice
	} else {
		event, err := s.DB.GetEventByID(*req.EventID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch event %s: %w", req.EventID, err)
		}
		if event == nil {
			return nil, models.ErrEventNotFound
		}

		scheduled, err := s.DB.EventScheduledOn(*req.EventID, req.VisitDate)
		if err != nil {
			return nil, fmt.Errorf("failed to check schedule for event %s: %w", req.EventID, err)
		}
		if !scheduled {
			return nil, models.ErrEventNotScheduled
		}

		// Current catalog price, not the price when the date was scheduled.
		unitPrice = event.Price
		eventName = &event.Name
	}

	purchase := models.TicketPurchase{
		PurchaseID:   uuid.New(),
		VisitDate:    req.VisitDate,
		Quantity:     req.Quantity,
		TotalCost:    unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		EventID:      req.EventID,
		PurchaseDate: time.Now().UTC(),
	}

	qrCode, err := s.QR.GenerateConfirmation(purchase)
	if err != nil {
		return nil, fmt.Errorf("failed to generate confirmation QR: %w", err)
	}

	if err := s.DB.CreatePurchase(purchase); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	return &models.PurchaseResponse{
		PurchaseID:   purchase.PurchaseID,
		VisitDate:    purchase.VisitDate,
		Quantity:     purchase.Quantity,
		TotalCost:    purchase.TotalCost,
		EventID:      purchase.EventID,
		EventName:    eventName,
		PurchaseDate: purchase.PurchaseDate,
		QRCode:       qrCode,
	}, nil
}
