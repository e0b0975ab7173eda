package hours_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"museum-api/internal/hours"
	"museum-api/internal/logger"
	"museum-api/internal/models"
	"museum-api/internal/types"
	"museum-api/internal/utils"
)

type Handler struct {
	HoursService *hours.HoursService
	Logger       *logger.Logger
}

// GetMuseumHours serves GET /v1/museumhours. A date= filter returns a
// one-element array, or an empty array when the museum is closed that
// day; startDate/endDate filter inclusively; no filter returns all.
func (h *Handler) GetMuseumHours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if raw := q.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			utils.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		hoursForDate, err := h.HoursService.GetHoursByDate(date)
		if err != nil {
			h.Logger.Error("HOURS", fmt.Sprintf("Failed to get hours for %s: %v", date, err))
			utils.WriteDomainError(w, err)
			return
		}
		result := make([]models.MuseumHours, 0, 1)
		if hoursForDate != nil {
			result = append(result, *hoursForDate)
		}
		utils.WriteJSON(w, http.StatusOK, result)
		return
	}

	if q.Get("startDate") != "" || q.Get("endDate") != "" {
		start, end, err := types.ParseRange(q.Get("startDate"), q.Get("endDate"))
		if err != nil {
			utils.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		result, err := h.HoursService.GetHoursByRange(start, end)
		if err != nil {
			h.Logger.Error("HOURS", fmt.Sprintf("Failed to get hours range: %v", err))
			utils.WriteDomainError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, result)
		return
	}

	result, err := h.HoursService.GetAllHours()
	if err != nil {
		h.Logger.Error("HOURS", fmt.Sprintf("Failed to get all hours: %v", err))
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// CreateMuseumHours serves POST /v1/admin/museumhours.
func (h *Handler) CreateMuseumHours(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.HoursService.CreateHours(req)
	if err != nil {
		h.Logger.Error("HOURS", fmt.Sprintf("Failed to create hours for %s: %v", req.Date, err))
		utils.WriteDomainError(w, err)
		return
	}

	h.Logger.LogDatabase("INSERT", "museum_hours", fmt.Sprintf("Museum open on %s", created.Date))
	utils.WriteJSON(w, http.StatusCreated, created)
}
