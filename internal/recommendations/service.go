// internal/recommendations/service.go

package recommendations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

var ErrValidation = errors.New("validation failed")

// algorithmsUsed is reported in response metadata.
var algorithmsUsed = []string{
	"collaborative_filtering",
	"content_based_matching",
	"behavioral_analysis",
	"market_trend_analysis",
}

// GenerateParams narrow a recommendation request.
type GenerateParams struct {
	UserID   string `validate:"required"`
	UserType string `validate:"required,oneof=brand investor"`
	// Category filters by category; empty or "all" disables the filter.
	Category string
	Limit    int
}

// GenerateResult is a recommendation set plus its metadata.
type GenerateResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        Metadata         `json:"metadata"`
}

// TrackInteractionRequest records how a user handled a recommendation.
type TrackInteractionRequest struct {
	UserID           string `json:"userId" validate:"required"`
	RecommendationID string `json:"recommendationId" validate:"required"`
	Action           string `json:"action" validate:"required,oneof=view click dismiss apply"`
	Feedback         string `json:"feedback"`
}

// Service generates personalized suggestions and tracks feedback.
type Service interface {
	Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error)
	TrackInteraction(ctx context.Context, req TrackInteractionRequest) (*Interaction, error)
}

type service struct {
	mu           sync.RWMutex
	interactions []*Interaction
}

func NewService() Service {
	return &service{}
}

func (s *service) Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error) {
	if err := utils.ValidateStruct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var recs []Recommendation
	if params.UserType == "brand" {
		recs = brandRecommendations()
	} else {
		recs = investorRecommendations()
	}

	if params.Category != "" && params.Category != "all" {
		filtered := recs[:0]
		for _, rec := range recs {
			if rec.Category == params.Category {
				filtered = append(filtered, rec)
			}
		}
		recs = filtered
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}
	if len(recs) > limit {
		recs = recs[:limit]
	}

	return &GenerateResult{
		Recommendations: recs,
		Metadata: Metadata{
			UserID:         params.UserID,
			UserType:       params.UserType,
			GeneratedAt:    time.Now().UTC(),
			AlgorithmsUsed: algorithmsUsed,
			Confidence:     summarize(recs),
		},
	}, nil
}

func summarize(recs []Recommendation) ConfidenceSummary {
	summary := ConfidenceSummary{}
	if len(recs) == 0 {
		return summary
	}

	total := 0
	for _, rec := range recs {
		total += rec.Confidence
		switch rec.Impact {
		case ImpactHigh:
			summary.High++
		case ImpactMedium:
			summary.Medium++
		case ImpactLow:
			summary.Low++
		}
	}
	summary.Avg = float64(total) / float64(len(recs))
	return summary
}

func (s *service) TrackInteraction(ctx context.Context, req TrackInteractionRequest) (*Interaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	interaction := &Interaction{
		ID:               fmt.Sprintf("interaction-%s", uuid.New().String()),
		UserID:           req.UserID,
		RecommendationID: req.RecommendationID,
		Action:           req.Action,
		Feedback:         req.Feedback,
		Timestamp:        time.Now().UTC(),
	}

	s.mu.Lock()
	s.interactions = append(s.interactions, interaction)
	s.mu.Unlock()

	interactionsTotal.WithLabelValues(req.Action).Inc()
	return interaction, nil
}
