// internal/notifications/models.go

package notifications

import "time"

// Notification types
const (
	TypeMatch            = "match"
	TypeMessage          = "message"
	TypeContractVerified = "contract_verified"
	TypeContractRejected = "contract_rejected"
)

// Notification is an in-app alert for a user.
type Notification struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	MatchID    *string    `json:"matchId,omitempty"`
	ContractID *string    `json:"contractId,omitempty"`
	IsRead     bool       `json:"isRead"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
}

// Email is an outbound email payload.
type Email struct {
	To      string
	Subject string
	Body    string
}

// SMSMessage is an outbound SMS payload.
type SMSMessage struct {
	To      string
	Message string
}

// Contact holds a user's delivery addresses for external channels.
type Contact struct {
	Email string
	Phone string
}
