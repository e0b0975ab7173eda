package tickets_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museum-api/internal/models"
	"museum-api/internal/tickets"
	"museum-api/internal/types"
)

// MockPurchaseDBLayer is a mock implementation of the PurchaseDBLayer interface
type MockPurchaseDBLayer struct {
	mock.Mock
}

func (m *MockPurchaseDBLayer) CreatePurchase(purchase models.TicketPurchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

func (m *MockPurchaseDBLayer) GetPurchaseByID(id uuid.UUID) (*models.TicketPurchase, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketPurchase), args.Error(1)
}

func (m *MockPurchaseDBLayer) MuseumOpenOn(date types.Date) (bool, error) {
	args := m.Called(date)
	return args.Bool(0), args.Error(1)
}

func (m *MockPurchaseDBLayer) GetEventByID(id uuid.UUID) (*models.SpecialEvent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpecialEvent), args.Error(1)
}

func (m *MockPurchaseDBLayer) EventScheduledOn(id uuid.UUID, date types.Date) (bool, error) {
	args := m.Called(id, date)
	return args.Bool(0), args.Error(1)
}

func TestPurchaseGeneralAdmission(t *testing.T) {
	// Set up mock
	mockDB := new(MockPurchaseDBLayer)
	svc := tickets.NewTicketService(mockDB, decimal.RequireFromString("10.00"))

	visitDate := types.NewDate(2025, time.October, 20)
	mockDB.On("MuseumOpenOn", visitDate).Return(true, nil)

	// Set up expectation: total is quantity times the admission price
	mockDB.On("CreatePurchase", mock.MatchedBy(func(p models.TicketPurchase) bool {
		return p.Quantity == 2 &&
			p.TotalCost.Equal(decimal.RequireFromString("20.00")) &&
			p.EventID == nil
	})).Return(nil)

	// Execute test
	resp, err := svc.Purchase(models.PurchaseRequest{
		VisitDate: visitDate,
		Quantity:  2,
	})

	// Assertions
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("20.00")))
	assert.Nil(t, resp.EventID)
	assert.Nil(t, resp.EventName)
	assert.NotEmpty(t, resp.QRCode)
	mockDB.AssertExpectations(t)
}

func TestPurchaseEventTicket(t *testing.T) {
	mockDB := new(MockPurchaseDBLayer)
	svc := tickets.NewTicketService(mockDB, decimal.RequireFromString("10.00"))

	eventID := uuid.New()
	visitDate := types.NewDate(2025, time.October, 20)
	mockDB.On("GetEventByID", eventID).Return(&models.SpecialEvent{
		EventID: eventID,
		Name:    "Gala Night",
		Price:   decimal.RequireFromString("33.33"),
	}, nil)
	mockDB.On("EventScheduledOn", eventID, visitDate).Return(true, nil)

	// Event tickets use the event price, not general admission
	mockDB.On("CreatePurchase", mock.MatchedBy(func(p models.TicketPurchase) bool {
		return p.TotalCost.Equal(decimal.RequireFromString("99.99")) &&
			p.EventID != nil && *p.EventID == eventID
	})).Return(nil)

	resp, err := svc.Purchase(models.PurchaseRequest{
		VisitDate: visitDate,
		Quantity:  3,
		EventID:   &eventID,
	})

	assert.NoError(t, err)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("99.99")))
	assert.NotNil(t, resp.EventName)
	assert.Equal(t, "Gala Night", *resp.EventName)
	// The museum-hours check only applies to general admission
	mockDB.AssertNotCalled(t, "MuseumOpenOn", mock.Anything)
	mockDB.AssertExpectations(t)
}

func TestPurchaseValidation(t *testing.T) {
	mockDB := new(MockPurchaseDBLayer)
	svc := tickets.NewTicketService(mockDB, decimal.RequireFromString("10.00"))

	visitDate := types.NewDate(2025, time.October, 20)

	// Test case: Zero quantity
	_, err := svc.Purchase(models.PurchaseRequest{VisitDate: visitDate, Quantity: 0})
	assert.ErrorIs(t, err, models.ErrQuantityNotPositive)

	// Test case: Negative quantity
	_, err = svc.Purchase(models.PurchaseRequest{VisitDate: visitDate, Quantity: -3})
	assert.ErrorIs(t, err, models.ErrQuantityNotPositive)

	// Test case: Missing visit date
	_, err = svc.Purchase(models.PurchaseRequest{Quantity: 1})
	assert.ErrorIs(t, err, models.ErrVisitDateRequired)

	// Nothing was persisted
	mockDB.AssertNotCalled(t, "CreatePurchase")
}

func TestPurchaseMuseumClosed(t *testing.T) {
	mockDB := new(MockPurchaseDBLayer)
	svc := tickets.NewTicketService(mockDB, decimal.RequireFromString("10.00"))

	visitDate := types.NewDate(2025, time.December, 25)
	mockDB.On("MuseumOpenOn", visitDate).Return(false, nil)

	_, err := svc.Purchase(models.PurchaseRequest{VisitDate: visitDate, Quantity: 1})
	assert.ErrorIs(t, err, models.ErrMuseumClosed)
	mockDB.AssertNotCalled(t, "CreatePurchase")
}

func TestPurchaseUnknownEvent(t *testing.T) {
	mockDB := new(MockPurchaseDBLayer)
	svc := tickets.NewTicketService(mockDB, decimal.RequireFromString("10.00"))

	eventID := uuid.New()
	visitDate := types.NewDate(2025, time.October, 20)
	mockDB.On("GetEventByID", eventID).Return(nil, nil)

	_, err := svc.Purchase(models.PurchaseRequest{
		VisitDate: visitDate,
		Quantity:  1,
		EventID:   &eventID,
	})
	assert.ErrorIs(t, err, models.ErrEventNotFound)
	mockDB.AssertNotCalled(t, "CreatePurchase")
}

func TestPurchaseEventNotScheduled(t *testing.T) {
	mockDB := new(MockPurchaseDBLayer)
	svc := tickets.NewTicketService(mockDB, decimal.RequireFromString("10.00"))

	eventID := uuid.New()
	visitDate := types.NewDate(2025, time.October, 20)
	mockDB.On("GetEventByID", eventID).Return(&models.SpecialEvent{
		EventID: eventID,
		Name:    "Gala",
		Price:   decimal.RequireFromString("50.00"),
	}, nil)
	mockDB.On("EventScheduledOn", eventID, visitDate).Return(false, nil)

	_, err := svc.Purchase(models.PurchaseRequest{
		VisitDate: visitDate,
		Quantity:  1,
		EventID:   &eventID,
	})
	assert.ErrorIs(t, err, models.ErrEventNotScheduled)
	mockDB.AssertNotCalled(t, "CreatePurchase")
}

func TestPurchaseUsesCurrentEventPrice(t *testing.T) {
	mockDB := new(MockPurchaseDBLayer)
	svc := tickets.NewTicketService(mockDB, decimal.RequireFromString("10.00"))

	eventID := uuid.New()
	visitDate := types.NewDate(2025, time.October, 20)

	// The catalog price at purchase time wins, whatever it was when the
	// date was scheduled.
	mockDB.On("GetEventByID", eventID).Return(&models.SpecialEvent{
		EventID: eventID,
		Name:    "Gala",
		Price:   decimal.RequireFromString("75.00"),
	}, nil)
	mockDB.On("EventScheduledOn", eventID, visitDate).Return(true, nil)
	mockDB.On("CreatePurchase", mock.Anything).Return(nil)

	resp, err := svc.Purchase(models.PurchaseRequest{
		VisitDate: visitDate,
		Quantity:  1,
		EventID:   &eventID,
	})
	assert.NoError(t, err)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("75.00")))
	mockDB.AssertExpectations(t)
}
