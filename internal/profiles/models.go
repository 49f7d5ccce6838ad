// internal/profiles/models.go

package profiles

import "time"

// User types. Brands see investors and vice versa.
const (
	TypeBrand    = "brand"
	TypeInvestor = "investor"
)

// Profile is a brand or investor card shown in discovery. Brand-side
// fields (FranchiseFee, MinInvestment, StoreCount) and investor-side
// fields (Budget, Experience) are optional depending on UserType.
type Profile struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	UserType    string   `json:"userType"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`

	// Brand fields
	FranchiseFee  *float64 `json:"franchiseFee,omitempty"`
	MinInvestment *float64 `json:"minInvestment,omitempty"`
	StoreCount    *int     `json:"storeCount,omitempty"`

	// Investor fields
	Budget     *float64 `json:"budget,omitempty"`
	Experience *string  `json:"experience,omitempty"`

	IsActive  bool       `json:"isActive"`
	Verified  bool       `json:"verified"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// InvestmentAmount is the figure budget-range filters compare against:
// the investor's budget, or the brand's minimum investment.
func (p *Profile) InvestmentAmount() float64 {
	if p.Budget != nil {
		return *p.Budget
	}
	if p.MinInvestment != nil {
		return *p.MinInvestment
	}
	return 0
}

// OppositeType returns the user type a requester should be shown
func OppositeType(userType string) string {
	if userType == TypeBrand {
		return TypeInvestor
	}
	return TypeBrand
}
