package qr_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"museum-api/internal/models"
	"museum-api/internal/tickets/qr"
	"museum-api/internal/types"
)

func TestGenerateConfirmation(t *testing.T) {
	generator := qr.NewGenerator()

	purchase := models.TicketPurchase{
		PurchaseID:   uuid.New(),
		VisitDate:    types.NewDate(2025, time.October, 20),
		Quantity:     2,
		PurchaseDate: time.Now().UTC(),
	}

	png, err := generator.GenerateConfirmation(purchase)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerateConfirmationDeterministic(t *testing.T) {
	generator := qr.NewGenerator()

	purchase := models.TicketPurchase{
		PurchaseID: uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		VisitDate:  types.NewDate(2025, time.October, 20),
		Quantity:   1,
	}

	first, err := generator.GenerateConfirmation(purchase)
	assert.NoError(t, err)
	second, err := generator.GenerateConfirmation(purchase)
	assert.NoError(t, err)

	// Same purchase always renders the same code
	assert.Equal(t, first, second)
}
