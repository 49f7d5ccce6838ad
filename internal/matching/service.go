// internal/matching/service.go

package matching

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

var (
	ErrValidation     = errors.New("invalid swipe request")
	ErrSelfSwipe      = errors.New("cannot swipe on yourself")
	ErrSwipeNotFound  = errors.New("swipe not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("user is not a participant of this match")
)

// Notifier delivers an in-app match notification to a participant
type Notifier interface {
	NotifyMatch(ctx context.Context, userID, matchID string) error
}

// Broadcaster pushes realtime events to connected clients
type Broadcaster interface {
	Push(userID string, event string, data interface{})
}

type Service interface {
	RecordSwipe(ctx context.Context, req *SwipeRequest) (*SwipeResult, error)
	GetSwipes(ctx context.Context, userID, swipeType string) ([]*SwipeAction, error)
	GetMatches(ctx context.Context, userID, status string, limit, offset int) ([]*Match, *Pagination, error)
	UpdateMatch(ctx context.Context, matchID string, req *UpdateMatchRequest) (*Match, error)
	ArchiveMatch(ctx context.Context, matchID, userID string) error

	// ListSwipedIDs returns every profile/user id the user has already
	// swiped on. Discovery uses it to exclude seen profiles.
	ListSwipedIDs(ctx context.Context, userID string) ([]string, error)
}

type service struct {
	repo        Repository
	notifier    Notifier
	broadcaster Broadcaster
}

func NewService(repo Repository, notifier Notifier, broadcaster Broadcaster) Service {
	return &service{
		repo:        repo,
		notifier:    notifier,
		broadcaster: broadcaster,
	}
}

// RecordSwipe stores the swipe under its composite key and, for a right
// swipe, checks the reverse key for a mutual match. The check is done
// from this swiper's perspective only: keys are directional, so the
// second right swipe of a pair is the one that completes the match.
func (s *service) RecordSwipe(ctx context.Context, req *SwipeRequest) (*SwipeResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.SwiperID == req.SwipedID {
		return nil, ErrSelfSwipe
	}

	swipe := &SwipeAction{
		ID:         swipeKey(req.SwiperID, req.SwipedID),
		SwiperID:   req.SwiperID,
		SwipedID:   req.SwipedID,
		Direction:  req.Direction,
		SwiperType: req.SwiperType,
		Timestamp:  time.Now(),
	}
	if err := s.repo.SaveSwipe(ctx, swipe); err != nil {
		return nil, err
	}
	RecordSwipe(req.Direction)

	result := &SwipeResult{SwipeID: swipe.ID}

	if req.Direction != DirectionRight {
		return result, nil
	}

	reverse, err := s.repo.GetSwipe(ctx, swipeKey(req.SwipedID, req.SwiperID))
	if err != nil || reverse.Direction != DirectionRight {
		return result, nil
	}

	match := &Match{
		ID:           fmt.Sprintf("match-%s", uuid.New().String()),
		User1ID:      req.SwiperID,
		User2ID:      req.SwipedID,
		Status:       MatchStatusActive,
		CreatedAt:    time.Now(),
		LastActivity: time.Now(),
	}
	if err := s.repo.CreateMatch(ctx, match); err != nil {
		return nil, err
	}
	RecordMatchCreated()

	result.IsMatch = true
	result.Match = match

	// One notification per participant, best effort
	if s.notifier != nil {
		for _, userID := range []string{match.User1ID, match.User2ID} {
			if err := s.notifier.NotifyMatch(ctx, userID, match.ID); err != nil {
				log.Printf("Failed to send match notification to %s: %v", userID, err)
			}
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.Push(match.User1ID, "match", match)
		s.broadcaster.Push(match.User2ID, "match", match)
	}

	return result, nil
}

func (s *service) GetSwipes(ctx context.Context, userID, swipeType string) ([]*SwipeAction, error) {
	swipes, err := s.repo.ListSwipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*SwipeAction, 0, len(swipes))
	for _, swipe := range swipes {
		switch swipeType {
		case "sent":
			if swipe.SwiperID == userID {
				result = append(result, swipe)
			}
		case "received":
			if swipe.SwipedID == userID {
				result = append(result, swipe)
			}
		default:
			if swipe.SwiperID == userID || swipe.SwipedID == userID {
				result = append(result, swipe)
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

func (s *service) GetMatches(ctx context.Context, userID, status string, limit, offset int) ([]*Match, *Pagination, error) {
	matches, err := s.repo.ListMatches(ctx)
	if err != nil {
		return nil, nil, err
	}

	filtered := make([]*Match, 0, len(matches))
	for _, m := range matches {
		if !m.Involves(userID) {
			continue
		}
		if status != "" && status != "all" && m.Status != status {
			continue
		}
		filtered = append(filtered, m)
	}

	// Most recent activity first
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].LastActivity.After(filtered[j].LastActivity)
	})

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := &Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: end < total,
	}
	return filtered[offset:end], page, nil
}

func (s *service) UpdateMatch(ctx context.Context, matchID string, req *UpdateMatchRequest) (*Match, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(req.UserID) {
		return nil, ErrNotParticipant
	}

	if req.Status != "" {
		match.Status = req.Status
	}
	match.LastActivity = time.Now()

	if err := s.repo.UpdateMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// ArchiveMatch soft-deletes: the record stays in the store with
// status=archived and attribution of who archived it.
func (s *service) ArchiveMatch(ctx context.Context, matchID, userID string) error {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.Involves(userID) {
		return ErrNotParticipant
	}

	now := time.Now()
	match.Status = MatchStatusArchived
	match.ArchivedAt = &now
	match.ArchivedBy = &userID

	return s.repo.UpdateMatch(ctx, match)
}

func (s *service) ListSwipedIDs(ctx context.Context, userID string) ([]string, error) {
	swipes, err := s.repo.ListSwipes(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, swipe := range swipes {
		if swipe.SwiperID == userID {
			ids = append(ids, swipe.SwipedID)
		}
	}
	return ids, nil
}

func swipeKey(swiperID, swipedID string) string {
	return swiperID + "-" + swipedID
}
