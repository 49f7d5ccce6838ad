// internal/analytics/handlers.go

package analytics

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAnalytics handles GET /api/v1/analytics?type=&dateRange=&includeDetails=
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := QueryParams{
		Type:           q.Get("type"),
		DateRange:      q.Get("dateRange"),
		IncludeDetails: q.Get("includeDetails") == "true",
	}

	result, err := h.service.Query(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidSection) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid analytics type")
			return
		}
		log.Printf("Analytics query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"data":     result.Data,
		"metadata": result.Metadata,
	})
}

// RecordEvent handles POST /api/v1/analytics
func (h *Handler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.service.RecordEvent(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Record analytics event error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"eventId": event.ID,
		"message": "Analytics event recorded successfully",
	})
}
