package events

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"museum-api/internal/models"
	"museum-api/internal/types"
)

type EventDBLayer interface {
	GetEventByID(id uuid.UUID) (*models.SpecialEvent, error)
	GetAllEvents() ([]models.SpecialEvent, error)
	GetEventsByDate(date types.Date) ([]models.SpecialEvent, error)
	GetEventsByDateRange(start, end types.Date) ([]models.SpecialEvent, error)
	CreateEvent(event models.SpecialEvent, dates []types.Date) error
	UpdateEvent(event models.SpecialEvent) error
	ReplaceEventDates(id uuid.UUID, dates []types.Date) error
	DeleteEvent(id uuid.UUID) error
	AddEventDate(id uuid.UUID, date types.Date) error
	RemoveEventDate(id uuid.UUID, date types.Date) error
}

type EventService struct {
	DB EventDBLayer
}

func NewEventService(db EventDBLayer) *EventService {
	return &EventService{DB: db}
}

// ---------------- READS ----------------

func (s *EventService) GetAllEvents() ([]models.SpecialEventResponse, error) {
	events, err := s.DB.GetAllEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return projections(events), nil
}

func (s *EventService) GetEventByID(id uuid.UUID) (*models.SpecialEventResponse, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}
	resp := event.Projection()
	return &resp, nil
}

func (s *EventService) GetEventsByDate(date types.Date) ([]models.SpecialEventResponse, error) {
	events, err := s.DB.GetEventsByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events for %s: %w", date, err)
	}
	return projections(events), nil
}

func (s *EventService) GetEventsByDateRange(start, end types.Date) ([]models.SpecialEventResponse, error) {
	events, err := s.DB.GetEventsByDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events for %s..%s: %w", start, end, err)
	}
	return projections(events), nil
}

// ---------------- MUTATIONS ----------------

// CreateEvent validates inputs, then persists the event together with
// its initial dates. Duplicate initial dates are collapsed.
func (s *EventService) CreateEvent(req models.CreateEventRequest) (*models.SpecialEventResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.ErrEventNameRequired
	}
	if req.Price.IsNegative() {
		return nil, models.ErrNegativePrice
	}

	event := models.SpecialEvent{
		EventID:     uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
	}
	dates := types.DedupDates(req.InitialDates)

	if err := s.DB.CreateEvent(event, dates); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &models.SpecialEventResponse{
		EventID:     event.EventID,
		Name:        event.Name,
		Description: event.Description,
		Price:       event.Price,
		Dates:       types.SortDates(dates),
	}, nil
}

// UpdateEvent applies a partial update. Nil fields stay untouched; a
// non-nil ReplaceDates substitutes the whole date set, empty included.
func (s *EventService) UpdateEvent(id uuid.UUID, req models.UpdateEventRequest) (*models.SpecialEventResponse, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, models.ErrEventNameRequired
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, models.ErrNegativePrice
	}

	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	if req.Name != nil {
		event.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		event.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		event.Price = *req.Price
	}

	if err := s.DB.UpdateEvent(*event); err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", id, err)
	}

	if req.ReplaceDates != nil {
		if err := s.DB.ReplaceEventDates(id, types.DedupDates(*req.ReplaceDates)); err != nil {
			return nil, fmt.Errorf("failed to replace dates for event %s: %w", id, err)
		}
	}

	return s.GetEventByID(id)
}

func (s *EventService) DeleteEvent(id uuid.UUID) error {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	if event == nil {
		return models.ErrEventNotFound
	}
	if err := s.DB.DeleteEvent(id); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}

// AddEventDate schedules the event on one more date. Adding a date the
// event already runs on is a conflict, distinct from an unknown event.
func (s *EventService) AddEventDate(id uuid.UUID, date types.Date) (*models.SpecialEventResponse, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	if err := s.DB.AddEventDate(id, date); err != nil {
		return nil, err
	}

	return s.GetEventByID(id)
}

func (s *EventService) RemoveEventDate(id uuid.UUID, date types.Date) (*models.SpecialEventResponse, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	if err := s.DB.RemoveEventDate(id, date); err != nil {
		return nil, err
	}

	return s.GetEventByID(id)
}

func projections(events []models.SpecialEvent) []models.SpecialEventResponse {
	out := make([]models.SpecialEventResponse, 0, len(events))
	for i := range events {
		out = append(out, events[i].Projection())
	}
	return out
}
