// internal/recommendations/models.go

package recommendations

import "time"

// Recommendation types
const (
	TypeProfileOptimization = "profile_optimization"
	TypeMatchingStrategy    = "matching_strategy"
	TypeConversationStarter = "conversation_starter"
	TypeMarketInsight       = "market_insight"
)

// Impact levels
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Recommendation is one personalized suggestion. The Data and
// TargetCriteria shapes vary by type, so they stay loosely typed.
type Recommendation struct {
	ID              string                 `json:"id"`
	Type            string                 `json:"type"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Confidence      int                    `json:"confidence"`
	Impact          string                 `json:"impact"`
	Category        string                 `json:"category"`
	Action          string                 `json:"action,omitempty"`
	Reasoning       string                 `json:"reasoning,omitempty"`
	SuggestedFields []string               `json:"suggestedFields,omitempty"`
	TargetCriteria  map[string]interface{} `json:"targetCriteria,omitempty"`
	Data            map[string]interface{} `json:"data,omitempty"`
}

// ConfidenceSummary aggregates a recommendation set.
type ConfidenceSummary struct {
	Avg    float64 `json:"avg"`
	High   int     `json:"high"`
	Medium int     `json:"medium"`
	Low    int     `json:"low"`
}

// Metadata accompanies a recommendation response.
type Metadata struct {
	UserID         string            `json:"userId"`
	UserType       string            `json:"userType"`
	GeneratedAt    time.Time         `json:"generatedAt"`
	AlgorithmsUsed []string          `json:"algorithmsUsed"`
	Confidence     ConfidenceSummary `json:"confidence"`
}

// Interaction records how a user responded to a recommendation.
type Interaction struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	RecommendationID string    `json:"recommendationId"`
	Action           string    `json:"action"`
	Feedback         string    `json:"feedback,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}
