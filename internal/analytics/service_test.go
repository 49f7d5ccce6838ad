// internal/analytics/service_test.go

package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewMemoryEventLog(), nil, 0)
}

func TestQueryFullReport(t *testing.T) {
	svc := newTestService()

	result, err := svc.Query(context.Background(), QueryParams{})
	require.NoError(t, err)

	report, ok := result.Data.(Report)
	require.True(t, ok)
	assert.Equal(t, 2847, report.Overview.TotalUsers)
	assert.Len(t, report.RecentActivity, 4)
	assert.Equal(t, "30d", result.Metadata.DateRange)
	assert.Empty(t, result.Metadata.Type)
}

func TestQueryOverviewScalesWithDateRange(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		dateRange  string
		totalUsers int
	}{
		{"7d", 712},   // 2847 * 0.25 rounded
		{"30d", 2847},
		{"90d", 8541},
		{"1y", 34164},
		{"bogus", 2847}, // unknown range falls back to 1x
	}

	for _, tc := range cases {
		result, err := svc.Query(context.Background(), QueryParams{Type: SectionOverview, DateRange: tc.dateRange})
		require.NoError(t, err)
		overview, ok := result.Data.(Overview)
		require.True(t, ok, tc.dateRange)
		assert.Equal(t, tc.totalUsers, overview.TotalUsers, tc.dateRange)
		// Rates never scale
		assert.Equal(t, 23.5, overview.MonthlyGrowth)
		// Brand/investor splits never scale either
		assert.Equal(t, 1023, overview.TotalBrands)
	}
}

func TestQueryRevenueScalesBreakdown(t *testing.T) {
	svc := newTestService()

	result, err := svc.Query(context.Background(), QueryParams{Type: SectionRevenue, DateRange: "90d"})
	require.NoError(t, err)

	revenue, ok := result.Data.(Revenue)
	require.True(t, ok)
	assert.Equal(t, 373500, revenue.Monthly)
	assert.Equal(t, 136800, revenue.Breakdown.PremiumSubscriptions)
	assert.Equal(t, 158700, revenue.Breakdown.SuccessFees)
	assert.Equal(t, 78000, revenue.Breakdown.FeaturedListings)
	// Growth rate is a percentage, not a volume
	assert.Equal(t, 12.3, revenue.GrowthRate)
}

func TestQueryMatchingAndActivityAreUnscaled(t *testing.T) {
	svc := newTestService()

	result, err := svc.Query(context.Background(), QueryParams{Type: SectionMatching, DateRange: "1y"})
	require.NoError(t, err)
	stats, ok := result.Data.(MatchingStats)
	require.True(t, ok)
	assert.Equal(t, 34.6, stats.MatchRate)
	assert.Len(t, stats.TopIndustries, 5)

	result, err = svc.Query(context.Background(), QueryParams{Type: SectionActivity, DateRange: "1y"})
	require.NoError(t, err)
	activity, ok := result.Data.([]ActivityItem)
	require.True(t, ok)
	assert.Len(t, activity, 4)
}

func TestQueryRejectsUnknownSection(t *testing.T) {
	svc := newTestService()

	_, err := svc.Query(context.Background(), QueryParams{Type: "finance"})
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestRecordEvent(t *testing.T) {
	events := NewMemoryEventLog()
	svc := NewService(events, nil, 0)

	ts := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	event, err := svc.RecordEvent(context.Background(), RecordEventRequest{
		EventType: "profile_view",
		UserID:    "user-1",
		Data:      map[string]interface{}{"profileId": "brand-1"},
		Timestamp: &ts,
	})
	require.NoError(t, err)
	assert.Contains(t, event.ID, "event-")
	assert.Contains(t, event.SessionID, "session-")
	assert.Equal(t, ts, event.Timestamp)

	stored := events.List()
	require.Len(t, stored, 1)
	assert.Equal(t, "profile_view", stored[0].EventType)
}

func TestRecordEventValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.RecordEvent(context.Background(), RecordEventRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordEvent(context.Background(), RecordEventRequest{EventType: "swipe"})
	assert.ErrorIs(t, err, ErrValidation)
}
