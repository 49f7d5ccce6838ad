// internal/messaging/models.go

package messaging

import (
	"encoding/json"
	"time"
)

// Message types
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
)

// Conversation is a thread between two matched users.
type Conversation struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	MatchID      string    `json:"matchId"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
	LastMessage  string    `json:"lastMessage"`
}

// Involves reports whether userID is a participant.
func (c *Conversation) Involves(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Message is a single chat message inside a conversation.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversationId"`
	SenderID       string     `json:"senderId"`
	RecipientID    string     `json:"recipientId"`
	Content        string     `json:"content"`
	Type           string     `json:"type"`
	Timestamp      time.Time  `json:"timestamp"`
	IsRead         bool       `json:"isRead"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
}

// WSEvent is the frame pushed to connected websocket clients.
type WSEvent struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Websocket event types
const (
	WSEventMessage = "message"
	WSEventMatch   = "match"
	WSEventRead    = "read"
)
