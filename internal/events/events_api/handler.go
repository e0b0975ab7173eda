package events_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"museum-api/internal/events"
	"museum-api/internal/logger"
	"museum-api/internal/models"
	"museum-api/internal/types"
	"museum-api/internal/utils"
)

type Handler struct {
	EventService *events.EventService
	Logger       *logger.Logger
}

// GetSpecialEvents serves GET /v1/specialevents with optional date= or
// startDate=/endDate= filters.
func (h *Handler) GetSpecialEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if raw := q.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			utils.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		result, err := h.EventService.GetEventsByDate(date)
		if err != nil {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to get events for %s: %v", date, err))
			utils.WriteDomainError(w, err)
			return
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
		result, err := h.EventService.GetEventsByDateRange(start, end)
		if err != nil {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to get events range: %v", err))
			utils.WriteDomainError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, result)
		return
	}

	result, err := h.EventService.GetAllEvents()
	if err != nil {
		h.Logger.Error("EVENTS", fmt.Sprintf("Failed to get all events: %v", err))
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetSpecialEventByID serves GET /v1/specialevents/{id}.
func (h *Handler) GetSpecialEventByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	event, err := h.EventService.GetEventByID(id)
	if err != nil {
		if !models.IsNotFound(err) {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to get event %s: %v", id, err))
		}
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, event)
}

// CreateSpecialEvent serves POST /v1/admin/specialevents.
func (h *Handler) CreateSpecialEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.EventService.CreateEvent(req)
	if err != nil {
		if !models.IsValidation(err) {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to create event: %v", err))
		}
		utils.WriteDomainError(w, err)
		return
	}

	h.Logger.LogDatabase("INSERT", "special_events", fmt.Sprintf("Created event %s", created.EventID))
	utils.WriteJSON(w, http.StatusCreated, created)
}

// UpdateSpecialEvent serves PUT /v1/admin/specialevents/{id}.
func (h *Handler) UpdateSpecialEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	var req models.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.EventService.UpdateEvent(id, req)
	if err != nil {
		if !models.IsValidation(err) && !models.IsNotFound(err) {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to update event %s: %v", id, err))
		}
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

// DeleteSpecialEvent serves DELETE /v1/admin/specialevents/{id}.
func (h *Handler) DeleteSpecialEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	if err := h.EventService.DeleteEvent(id); err != nil {
		if !models.IsNotFound(err) {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to delete event %s: %v", id, err))
		}
		utils.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddEventDate serves POST /v1/admin/specialevents/{id}/dates.
func (h *Handler) AddEventDate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	var req models.AddEventDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date.IsZero() {
		utils.WriteMessage(w, http.StatusBadRequest, models.ErrDateRequired.Error())
		return
	}

	updated, err := h.EventService.AddEventDate(id, req.Date)
	if err != nil {
		if !models.IsNotFound(err) && !models.IsBusinessRule(err) {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to add date to event %s: %v", id, err))
		}
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

// RemoveEventDate serves DELETE /v1/admin/specialevents/{id}/dates/{date}.
func (h *Handler) RemoveEventDate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	date, err := types.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.EventService.RemoveEventDate(id, date)
	if err != nil {
		if !models.IsNotFound(err) && !models.IsBusinessRule(err) {
			h.Logger.Error("EVENTS", fmt.Sprintf("Failed to remove date from event %s: %v", id, err))
		}
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

// eventID parses the {id} route parameter; a malformed UUID cannot
// reference any event, so it reads as not found.
func (h *Handler) eventID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteMessage(w, http.StatusNotFound, models.ErrEventNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}
