// internal/recommendations/service_test.go

package recommendations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateByUserType(t *testing.T) {
	svc := NewService()

	result, err := svc.Generate(context.Background(), GenerateParams{UserID: "user-1", UserType: "brand"})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 4)
	assert.Equal(t, "rec-1", result.Recommendations[0].ID)

	result, err = svc.Generate(context.Background(), GenerateParams{UserID: "user-2", UserType: "investor"})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 4)
	assert.Equal(t, "rec-5", result.Recommendations[0].ID)
}

func TestGenerateCategoryFilter(t *testing.T) {
	svc := NewService()

	result, err := svc.Generate(context.Background(), GenerateParams{
		UserID:   "user-1",
		UserType: "brand",
		Category: "Strategy",
	})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "rec-2", result.Recommendations[0].ID)

	// "all" disables the filter
	result, err = svc.Generate(context.Background(), GenerateParams{
		UserID:   "user-1",
		UserType: "brand",
		Category: "all",
	})
	require.NoError(t, err)
	assert.Len(t, result.Recommendations, 4)

	// Unknown category simply yields nothing
	result, err = svc.Generate(context.Background(), GenerateParams{
		UserID:   "user-1",
		UserType: "brand",
		Category: "Legal",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, ConfidenceSummary{}, result.Metadata.Confidence)
}

func TestGenerateLimit(t *testing.T) {
	svc := NewService()

	result, err := svc.Generate(context.Background(), GenerateParams{
		UserID:   "user-1",
		UserType: "brand",
		Limit:    2,
	})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "rec-1", result.Recommendations[0].ID)
	assert.Equal(t, "rec-2", result.Recommendations[1].ID)
}

func TestGenerateMetadata(t *testing.T) {
	svc := NewService()

	result, err := svc.Generate(context.Background(), GenerateParams{UserID: "user-1", UserType: "brand"})
	require.NoError(t, err)

	meta := result.Metadata
	assert.Equal(t, "user-1", meta.UserID)
	assert.Equal(t, "brand", meta.UserType)
	assert.Len(t, meta.AlgorithmsUsed, 4)
	// (92 + 87 + 78 + 85) / 4
	assert.InDelta(t, 85.5, meta.Confidence.Avg, 0.001)
	assert.Equal(t, 2, meta.Confidence.High)
	assert.Equal(t, 2, meta.Confidence.Medium)
	assert.Equal(t, 0, meta.Confidence.Low)
}

func TestGenerateValidation(t *testing.T) {
	svc := NewService()

	_, err := svc.Generate(context.Background(), GenerateParams{UserType: "brand"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Generate(context.Background(), GenerateParams{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Generate(context.Background(), GenerateParams{UserID: "user-1", UserType: "admin"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTrackInteraction(t *testing.T) {
	svc := NewService()

	interaction, err := svc.TrackInteraction(context.Background(), TrackInteractionRequest{
		UserID:           "user-1",
		RecommendationID: "rec-2",
		Action:           "apply",
		Feedback:         "worked well",
	})
	require.NoError(t, err)
	assert.Contains(t, interaction.ID, "interaction-")
	assert.Equal(t, "apply", interaction.Action)

	_, err = svc.TrackInteraction(context.Background(), TrackInteractionRequest{
		UserID:           "user-1",
		RecommendationID: "rec-2",
		Action:           "swipe",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
