package utils

import (
	"encoding/json"
	"net/http"

	"museum-api/internal/models"
)

type messageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, messageBody{Message: message})
}

// WriteDomainError maps a service error onto the HTTP taxonomy:
// validation and business-rule violations are 400, missing entities are
// 404, everything else is a generic 500. Internal detail never reaches
// the caller.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidation(err), models.IsBusinessRule(err):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	case models.IsNotFound(err):
		WriteMessage(w, http.StatusNotFound, err.Error())
	default:
		WriteMessage(w, http.StatusInternalServerError, "an unexpected error occurred")
	}
}
