package hours

import (
	"fmt"

	"museum-api/internal/models"
	"museum-api/internal/types"
)

type HoursDBLayer interface {
	GetHoursByDate(date types.Date) (*models.MuseumHours, error)
	GetHoursByRange(start, end types.Date) ([]models.MuseumHours, error)
	GetAllHours() ([]models.MuseumHours, error)
	CreateHours(hours models.MuseumHours) error
}

type HoursService struct {
	DB HoursDBLayer
}

func NewHoursService(db HoursDBLayer) *HoursService {
	return &HoursService{DB: db}
}

// GetHoursByDate returns nil when the museum is closed on the date.
func (s *HoursService) GetHoursByDate(date types.Date) (*models.MuseumHours, error) {
	hours, err := s.DB.GetHoursByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hours for %s: %w", date, err)
	}
	return hours, nil
}

func (s *HoursService) GetHoursByRange(start, end types.Date) ([]models.MuseumHours, error) {
	hours, err := s.DB.GetHoursByRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hours for %s..%s: %w", start, end, err)
	}
	return hours, nil
}

func (s *HoursService) GetAllHours() ([]models.MuseumHours, error) {
	hours, err := s.DB.GetAllHours()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hours: %w", err)
	}
	return hours, nil
}

// CreateHours opens the museum on a date. Both times are required and a
// date can only be configured once.
func (s *HoursService) CreateHours(req models.CreateHoursRequest) (*models.MuseumHours, error) {
	if req.Date.IsZero() {
		return nil, models.ErrDateRequired
	}
	if req.TimeOpen == nil || req.TimeClosed == nil {
		return nil, models.ErrHoursIncomplete
	}

	hours := models.MuseumHours{
		Date:       req.Date,
		TimeOpen:   *req.TimeOpen,
		TimeClosed: *req.TimeClosed,
	}

	if err := s.DB.CreateHours(hours); err != nil {
		return nil, err
	}
	return &hours, nil
}
