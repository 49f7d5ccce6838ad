// internal/matching/models.go

package matching

import "time"

// Swipe directions
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Match statuses
const (
	MatchStatusNew      = "new"
	MatchStatusActive   = "active"
	MatchStatusArchived = "archived"
)

// SwipeAction records a directional swipe. The ID is the composite
// swiper-swiped key, so a later swipe on the same pair overwrites the
// earlier one.
type SwipeAction struct {
	ID         string    `json:"id"`
	SwiperID   string    `json:"swiperId"`
	SwipedID   string    `json:"swipedId"`
	Direction  string    `json:"direction"`
	SwiperType string    `json:"swiperType,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Match pairs a brand and an investor after mutual right swipes.
// Matches are archived rather than deleted.
type Match struct {
	ID           string     `json:"id"`
	User1ID      string     `json:"user1Id"`
	User2ID      string     `json:"user2Id"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastActivity time.Time  `json:"lastActivity"`
	ArchivedAt   *time.Time `json:"archivedAt,omitempty"`
	ArchivedBy   *string    `json:"archivedBy,omitempty"`
}

// Involves reports whether the user is one of the two participants
func (m *Match) Involves(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}
