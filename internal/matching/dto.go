// internal/matching/dto.go
package matching

// DTOs for API requests/responses

type SwipeRequest struct {
	SwiperID   string `json:"swiperId" validate:"required"`
	SwipedID   string `json:"swipedId" validate:"required"`
	Direction  string `json:"direction" validate:"required,oneof=left right"`
	SwiperType string `json:"swiperType" validate:"omitempty,oneof=brand investor"`
}

// SwipeResult reports whether the swipe completed a mutual match
type SwipeResult struct {
	SwipeID string `json:"swipeId"`
	IsMatch bool   `json:"isMatch"`
	Match   *Match `json:"matchData"`
}

type UpdateMatchRequest struct {
	UserID string `json:"userId" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=new active archived"`
}

// Pagination describes a page of match results
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}
