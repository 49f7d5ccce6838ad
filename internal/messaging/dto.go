// internal/messaging/dto.go

package messaging

// SendMessageRequest is the payload for POST /api/v1/messages. When
// ConversationID is empty a conversation is created from MatchID.
type SendMessageRequest struct {
	ConversationID string `json:"conversationId" validate:"omitempty"`
	SenderID       string `json:"senderId" validate:"required"`
	RecipientID    string `json:"recipientId" validate:"required"`
	Content        string `json:"content" validate:"required"`
	Type           string `json:"type" validate:"omitempty,oneof=text image file"`
	MatchID        string `json:"matchId" validate:"omitempty"`
}

// MarkReadRequest is the payload for PUT /api/v1/messages.
type MarkReadRequest struct {
	MessageID string `json:"messageId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
	IsRead    bool   `json:"isRead"`
}

// Pagination describes a page of messages.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}
