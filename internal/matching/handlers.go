package matching

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Swipe handles POST /swipe
func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.service.RecordSwipe(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrValidation) || errors.Is(err, ErrSelfSwipe) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record swipe")
		return
	}

	message := "Swipe recorded successfully"
	if result.IsMatch {
		message = "It's a match!"
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"swipeId":   result.SwipeID,
		"isMatch":   result.IsMatch,
		"matchData": result.Match,
		"message":   message,
	})
}

// SwipeHistory handles GET /swipe?userId=&type=sent|received|matches
func (h *Handler) SwipeHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	historyType := r.URL.Query().Get("type")

	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	var data interface{}
	var count int

	if historyType == "matches" {
		matches, _, err := h.service.GetMatches(r.Context(), userID, "all", 1<<30, 0)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get swipe history")
			return
		}
		data, count = matches, len(matches)
	} else {
		swipes, err := h.service.GetSwipes(r.Context(), userID, historyType)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get swipe history")
			return
		}
		data, count = swipes, len(swipes)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
		"count":   count,
	})
}

// GetMatches handles GET /matches?userId=&status=&limit=&offset=
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	status := r.URL.Query().Get("status")
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	matches, page, err := h.service.GetMatches(r.Context(), userID, status, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get matches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"matches":    matches,
		"pagination": page,
	})
}

// UpdateMatch handles PUT /matches/{id}
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	var req UpdateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	match, err := h.service.UpdateMatch(r.Context(), matchID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrMatchNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Match not found")
		case errors.Is(err, ErrNotParticipant):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update match")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"match":   match,
	})
}

// ArchiveMatch handles DELETE /matches/{id}
func (h *Handler) ArchiveMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := h.service.ArchiveMatch(r.Context(), matchID, req.UserID); err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Match not found")
		case errors.Is(err, ErrNotParticipant):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to archive match")
		}
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Match archived successfully")
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}
