package ticket_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"museum-api/internal/logger"
	"museum-api/internal/models"
	"museum-api/internal/tickets"
	"museum-api/internal/utils"
)

type Handler struct {
	TicketService *tickets.TicketService
	Logger        *logger.Logger
}

// PurchaseTicket serves POST /v1/tickets/purchase. Every domain failure
// is a 400 here — an unknown event in a purchase request is a broken
// business rule, not a missing resource.
func (h *Handler) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.TicketService.Purchase(req)
	if err != nil {
		if models.IsValidation(err) || models.IsBusinessRule(err) || models.IsNotFound(err) {
			utils.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("PURCHASE", fmt.Sprintf("Purchase failed: %v", err))
		utils.WriteMessage(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	h.Logger.LogPurchase("CREATE", resp.PurchaseID.String(),
		fmt.Sprintf("%d ticket(s) for %s, total %s", resp.Quantity, resp.VisitDate, resp.TotalCost))
	utils.WriteJSON(w, http.StatusCreated, resp)
}
