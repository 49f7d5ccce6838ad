// internal/messaging/handlers.go

package messaging

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict origins once the frontend domain is fixed
		return true
	},
}

type Handler struct {
	service Service
	hub     *Hub
}

func NewHandler(service Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// GetMessages handles GET /api/v1/messages. With type=conversations it
// lists the user's threads; with conversationId it pages one thread.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("userId")
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	if q.Get("type") == "conversations" {
		conversations, err := h.service.GetConversations(r.Context(), userID)
		if err != nil {
			log.Printf("List conversations error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success":       true,
			"conversations": conversations,
			"count":         len(conversations),
		})
		return
	}

	conversationID := q.Get("conversationId")
	if conversationID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Conversation ID or type parameter is required")
		return
	}

	limit := queryInt(q.Get("limit"), 50)
	offset := queryInt(q.Get("offset"), 0)

	page, err := h.service.GetMessages(r.Context(), conversationID, userID, limit, offset)
	if err != nil {
		if errors.Is(err, ErrConversationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Conversation not found or unauthorized")
			return
		}
		log.Printf("Get messages error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"messages":     page.Messages,
		"conversation": page.Conversation,
		"pagination":   page.Pagination,
	})
}

// SendMessage handles POST /api/v1/messages
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.SendMessage(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation), errors.Is(err, ErrConversationRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Send message error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        result.Message,
		"conversationId": result.ConversationID,
	})
}

// MarkRead handles PUT /api/v1/messages
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.service.MarkRead(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrMessageNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Message not found")
		case errors.Is(err, ErrNotRecipient):
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized")
		default:
			log.Printf("Mark read error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": msg,
	})
}

// ServeWS handles GET /ws?userId= and upgrades the connection.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := NewClient(h.hub, conn, userID)
	h.hub.register <- client
	client.Start()
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
