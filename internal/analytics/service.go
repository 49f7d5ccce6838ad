// internal/analytics/service.go

package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrInvalidSection = errors.New("invalid analytics type")
)

// Sections of the analytics report.
const (
	SectionOverview = "overview"
	SectionUsers    = "users"
	SectionMatching = "matching"
	SectionRevenue  = "revenue"
	SectionActivity = "activity"
)

// rangeMultipliers scale the 30-day baseline for other date ranges.
var rangeMultipliers = map[string]float64{
	"7d":  0.25,
	"30d": 1,
	"90d": 3,
	"1y":  12,
}

// QueryParams narrow an analytics request.
type QueryParams struct {
	Type           string
	DateRange      string
	IncludeDetails bool
}

// QueryResult is a section (or full report) plus its metadata.
type QueryResult struct {
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
}

// RecordEventRequest is the payload for POST /api/v1/analytics.
type RecordEventRequest struct {
	EventType string                 `json:"eventType" validate:"required"`
	UserID    string                 `json:"userId" validate:"required"`
	Data      map[string]interface{} `json:"data"`
	Timestamp *time.Time             `json:"timestamp"`
}

// Service produces admin analytics reports and records custom events.
type Service interface {
	Query(ctx context.Context, params QueryParams) (*QueryResult, error)
	RecordEvent(ctx context.Context, req RecordEventRequest) (*Event, error)
}

type service struct {
	events EventLog
	cache  *redis.Client
	ttl    time.Duration
}

// NewService wires the analytics service. cache may be nil, in which
// case every query recomputes the report.
func NewService(events EventLog, cache *redis.Client, ttl time.Duration) Service {
	return &service{events: events, cache: cache, ttl: ttl}
}

func (s *service) Query(ctx context.Context, params QueryParams) (*QueryResult, error) {
	dateRange := params.DateRange
	if dateRange == "" {
		dateRange = "30d"
	}

	meta := Metadata{
		DateRange:      dateRange,
		GeneratedAt:    time.Now().UTC(),
		IncludeDetails: params.IncludeDetails,
		Type:           params.Type,
	}

	if cached, ok := s.cacheGet(ctx, params.Type, dateRange); ok {
		return &QueryResult{Data: cached, Metadata: meta}, nil
	}

	data, err := buildSection(params.Type, dateRange)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, params.Type, dateRange, data)
	return &QueryResult{Data: data, Metadata: meta}, nil
}

// buildSection returns one report section scaled for the date range,
// or the full unscaled report when section is empty.
func buildSection(section, dateRange string) (interface{}, error) {
	report := baselineReport()
	if section == "" {
		return report, nil
	}

	multiplier, ok := rangeMultipliers[dateRange]
	if !ok {
		multiplier = 1
	}

	switch section {
	case SectionOverview:
		o := report.Overview
		o.TotalUsers = scale(o.TotalUsers, multiplier)
		o.TotalMatches = scale(o.TotalMatches, multiplier)
		o.RevenueThisMonth = scale(o.RevenueThisMonth, multiplier)
		return o, nil

	case SectionUsers:
		u := report.UserActivity
		u.MonthlyActiveUsers = scale(u.MonthlyActiveUsers, multiplier)
		u.MessagesSent = scale(u.MessagesSent, multiplier)
		u.ProfileViews = scale(u.ProfileViews, multiplier)
		return u, nil

	case SectionMatching:
		return report.MatchingStats, nil

	case SectionRevenue:
		r := report.Revenue
		r.Monthly = scale(r.Monthly, multiplier)
		r.Breakdown.PremiumSubscriptions = scale(r.Breakdown.PremiumSubscriptions, multiplier)
		r.Breakdown.SuccessFees = scale(r.Breakdown.SuccessFees, multiplier)
		r.Breakdown.FeaturedListings = scale(r.Breakdown.FeaturedListings, multiplier)
		return r, nil

	case SectionActivity:
		return report.RecentActivity, nil

	default:
		return nil, ErrInvalidSection
	}
}

func scale(v int, multiplier float64) int {
	return int(math.Round(float64(v) * multiplier))
}

func (s *service) RecordEvent(ctx context.Context, req RecordEventRequest) (*Event, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil {
		timestamp = req.Timestamp.UTC()
	}

	event := &Event{
		ID:        fmt.Sprintf("event-%s", uuid.New().String()),
		EventType: req.EventType,
		UserID:    req.UserID,
		Data:      req.Data,
		Timestamp: timestamp,
		SessionID: fmt.Sprintf("session-%s", uuid.New().String()),
	}
	if err := s.events.Append(event); err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}

	eventsRecordedTotal.WithLabelValues(req.EventType).Inc()
	return event, nil
}

func cacheKey(section, dateRange string) string {
	if section == "" {
		section = "full"
	}
	return fmt.Sprintf("analytics:%s:%s", section, dateRange)
}

func (s *service) cacheGet(ctx context.Context, section, dateRange string) (json.RawMessage, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cacheKey(section, dateRange)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Analytics cache read error: %v", err)
		}
		return nil, false
	}
	return json.RawMessage(raw), true
}

func (s *service) cacheSet(ctx context.Context, section, dateRange string, data interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(section, dateRange), raw, s.ttl).Err(); err != nil {
		log.Printf("Analytics cache write error: %v", err)
	}
}
