// internal/profiles/dto.go

package profiles

// CreateProfileRequest is the payload for POST /api/v1/profiles.
type CreateProfileRequest struct {
	UserID      string   `json:"userId" validate:"required"`
	UserType    string   `json:"userType" validate:"required,oneof=brand investor"`
	Name        string   `json:"name" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Location    string   `json:"location"`
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`

	FranchiseFee  *float64 `json:"franchiseFee" validate:"omitempty,gt=0"`
	MinInvestment *float64 `json:"minInvestment" validate:"omitempty,gt=0"`
	StoreCount    *int     `json:"storeCount" validate:"omitempty,min=0"`

	Budget     *float64 `json:"budget" validate:"omitempty,gt=0"`
	Experience *string  `json:"experience"`
}

// UpdateProfileRequest carries partial updates. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Company     *string   `json:"company" validate:"omitempty,min=1"`
	Location    *string   `json:"location"`
	Industry    *string   `json:"industry"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Images      *[]string `json:"images"`

	FranchiseFee  *float64 `json:"franchiseFee" validate:"omitempty,gt=0"`
	MinInvestment *float64 `json:"minInvestment" validate:"omitempty,gt=0"`
	StoreCount    *int     `json:"storeCount" validate:"omitempty,min=0"`

	Budget     *float64 `json:"budget" validate:"omitempty,gt=0"`
	Experience *string  `json:"experience"`

	IsActive *bool `json:"isActive"`
}

// Filters narrows a discovery listing.
type Filters struct {
	// RequesterID, when set, excludes the requester's own profiles and
	// every profile they have already swiped on.
	RequesterID string
	// UserType of the requester; results are the opposite type.
	UserType string
	Industry string
	// BudgetMin/BudgetMax bound Profile.InvestmentAmount when BudgetSet.
	BudgetSet bool
	BudgetMin float64
	BudgetMax float64
}
