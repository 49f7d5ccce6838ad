// internal/recommendations/handlers.go

package recommendations

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetRecommendations handles GET /api/v1/recommendations?userId=&userType=&category=&limit=
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("userId")
	userType := q.Get("userType")
	if userID == "" || userType == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID and user type are required")
		return
	}

	limit := 10
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	result, err := h.service.Generate(r.Context(), GenerateParams{
		UserID:   userID,
		UserType: userType,
		Category: q.Get("category"),
		Limit:    limit,
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Generate recommendations error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"recommendations": result.Recommendations,
		"metadata":        result.Metadata,
		"count":           len(result.Recommendations),
	})
}

// TrackInteraction handles POST /api/v1/recommendations
func (h *Handler) TrackInteraction(w http.ResponseWriter, r *http.Request) {
	var req TrackInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	interaction, err := h.service.TrackInteraction(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Track interaction error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"interactionId": interaction.ID,
		"message":       "Interaction recorded successfully",
	})
}
