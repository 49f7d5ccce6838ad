// internal/notifications/handlers.go

package notifications

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListNotifications handles GET /api/v1/notifications?userId=
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	list, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.Printf("List notifications error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	unread := 0
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"notifications": list,
		"count":         len(list),
		"unreadCount":   unread,
	})
}

// MarkRead handles POST /api/v1/notifications/{id}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["id"]

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	n, err := h.service.MarkRead(r.Context(), notificationID, body.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotificationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		case errors.Is(err, ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized")
		default:
			log.Printf("Mark notification read error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"notification": n,
	})
}
