// internal/analytics/models.go

package analytics

import "time"

// Overview is the admin dashboard headline block.
type Overview struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalBrands      int     `json:"totalBrands"`
	TotalInvestors   int     `json:"totalInvestors"`
	ActiveMatches    int     `json:"activeMatches"`
	TotalMatches     int     `json:"totalMatches"`
	SuccessfulDeals  int     `json:"successfulDeals"`
	MonthlyGrowth    float64 `json:"monthlyGrowth"`
	RevenueThisMonth int     `json:"revenueThisMonth"`
}

// UserActivity aggregates engagement figures.
type UserActivity struct {
	DailyActiveUsers   int     `json:"dailyActiveUsers"`
	WeeklyActiveUsers  int     `json:"weeklyActiveUsers"`
	MonthlyActiveUsers int     `json:"monthlyActiveUsers"`
	AvgSessionTime     float64 `json:"avgSessionTime"`
	SwipesPerSession   float64 `json:"swipesPerSession"`
	MessagesSent       int     `json:"messagesSent"`
	ProfileViews       int     `json:"profileViews"`
}

// IndustryShare is one row of the top-industries breakdown.
type IndustryShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Users      int     `json:"users"`
}

// MatchingStats covers funnel conversion figures.
type MatchingStats struct {
	MatchRate          float64         `json:"matchRate"`
	ChatInitiationRate float64         `json:"chatInitiationRate"`
	DealClosureRate    float64         `json:"dealClosureRate"`
	AvgTimeToMatch     float64         `json:"avgTimeToMatch"`
	TopIndustries      []IndustryShare `json:"topIndustries"`
}

// ActivityItem is one entry in the recent activity feed.
type ActivityItem struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Timestamp   time.Time              `json:"timestamp"`
	Status      string                 `json:"status"`
	Details     map[string]interface{} `json:"details"`
}

// RevenueBreakdown splits monthly revenue by source.
type RevenueBreakdown struct {
	PremiumSubscriptions int `json:"premiumSubscriptions"`
	SuccessFees          int `json:"successFees"`
	FeaturedListings     int `json:"featuredListings"`
}

// Revenue is the revenue report block.
type Revenue struct {
	Monthly         int              `json:"monthly"`
	Breakdown       RevenueBreakdown `json:"breakdown"`
	GrowthRate      float64          `json:"growthRate"`
	ProjectedAnnual int              `json:"projectedAnnual"`
}

// Report is the full analytics payload when no section is requested.
type Report struct {
	Overview       Overview       `json:"overview"`
	UserActivity   UserActivity   `json:"userActivity"`
	MatchingStats  MatchingStats  `json:"matchingStats"`
	RecentActivity []ActivityItem `json:"recentActivity"`
	Revenue        Revenue        `json:"revenue"`
}

// Event is a custom analytics event recorded by clients.
type Event struct {
	ID        string                 `json:"id"`
	EventType string                 `json:"eventType"`
	UserID    string                 `json:"userId"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	SessionID string                 `json:"sessionId"`
}

// Metadata accompanies every analytics response.
type Metadata struct {
	DateRange      string    `json:"dateRange"`
	GeneratedAt    time.Time `json:"generatedAt"`
	IncludeDetails bool      `json:"includeDetails"`
	Type           string    `json:"type,omitempty"`
}
