package qr

import (
	"encoding/json"

	"github.com/skip2/go-qrcode"

	"museum-api/internal/models"
)

// confirmation is the payload embedded in the purchase QR code. Gate
// staff scan it to pull up the purchase record.
type confirmation struct {
	PurchaseID string `json:"purchaseId"`
	VisitDate  string `json:"visitDate"`
	Quantity   int    `json:"quantity"`
}

type Generator struct {
	size int
}

func NewGenerator() *Generator {
	return &Generator{size: 256}
}

// GenerateConfirmation renders the purchase reference as a PNG QR code.
func (g *Generator) GenerateConfirmation(purchase models.TicketPurchase) ([]byte, error) {
	payload := confirmation{
		PurchaseID: purchase.PurchaseID.String(),
		VisitDate:  purchase.VisitDate.String(),
		Quantity:   purchase.Quantity,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(string(data), qrcode.Medium, g.size)
}
