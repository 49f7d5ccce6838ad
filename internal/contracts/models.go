// internal/contracts/models.go

package contracts

import "time"

// Contract types
const (
	TypeExpected = "expected"
	TypeOfficial = "official"
)

// Contract statuses. A contract is created pending and transitions
// exactly once to verified or rejected.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// Evidence describes an uploaded proof-of-deal document
type Evidence struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"type"`
	URL         string `json:"url"`
}

// Contract is a self-reported deal value awaiting admin verification.
// The connection fee shown to matched parties is derived from
// ContractValue via ConnectionFee.
type Contract struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	ContractType  string     `json:"contractType"`
	ContractValue float64    `json:"contractValue"`
	DealCount     int        `json:"dealCount"`
	Evidence      *Evidence  `json:"evidence"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	VerifiedAt    *time.Time `json:"verifiedAt"`
	VerifiedBy    *string    `json:"verifiedBy"`
}
