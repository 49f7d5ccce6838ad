package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifierStub struct {
	notified []string
}

func (n *notifierStub) NotifyMatch(ctx context.Context, userID, matchID string) error {
	n.notified = append(n.notified, userID)
	return nil
}

func newTestService() (Service, *notifierStub) {
	notifier := &notifierStub{}
	return NewService(NewMemoryRepository(), notifier, nil), notifier
}

func swipe(t *testing.T, svc Service, swiper, swiped, direction string) *SwipeResult {
	t.Helper()
	result, err := svc.RecordSwipe(context.Background(), &SwipeRequest{
		SwiperID:  swiper,
		SwipedID:  swiped,
		Direction: direction,
	})
	require.NoError(t, err)
	return result
}

func TestMutualRightSwipeCreatesMatch(t *testing.T) {
	svc, notifier := newTestService()

	first := swipe(t, svc, "brand-1", "investor-1", DirectionRight)
	assert.False(t, first.IsMatch)
	assert.Nil(t, first.Match)

	second := swipe(t, svc, "investor-1", "brand-1", DirectionRight)
	assert.True(t, second.IsMatch)
	require.NotNil(t, second.Match)

	match := second.Match
	assert.Equal(t, MatchStatusActive, match.Status)
	assert.True(t, match.Involves("brand-1"))
	assert.True(t, match.Involves("investor-1"))

	// Exactly one match record
	matches, page, err := svc.GetMatches(context.Background(), "brand-1", "all", 20, 0)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, 1, page.Total)

	// Exactly one notification per participant
	assert.ElementsMatch(t, []string{"brand-1", "investor-1"}, notifier.notified)
}

func TestSingleRightSwipeIsNotAMatch(t *testing.T) {
	svc, notifier := newTestService()

	result := swipe(t, svc, "brand-1", "investor-1", DirectionRight)
	assert.False(t, result.IsMatch)

	matches, _, err := svc.GetMatches(context.Background(), "brand-1", "all", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Empty(t, notifier.notified)
}

func TestLeftReplySuppressesMatch(t *testing.T) {
	svc, _ := newTestService()

	swipe(t, svc, "brand-1", "investor-1", DirectionRight)
	result := swipe(t, svc, "investor-1", "brand-1", DirectionLeft)
	assert.False(t, result.IsMatch)
}

func TestSwipeOverwritesSameKey(t *testing.T) {
	svc, _ := newTestService()

	swipe(t, svc, "brand-1", "investor-1", DirectionLeft)
	swipe(t, svc, "brand-1", "investor-1", DirectionRight)

	sent, err := svc.GetSwipes(context.Background(), "brand-1", "sent")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, DirectionRight, sent[0].Direction)

	// The overwritten right swipe now completes a match
	result := swipe(t, svc, "investor-1", "brand-1", DirectionRight)
	assert.True(t, result.IsMatch)
}

func TestSwipeValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordSwipe(ctx, &SwipeRequest{SwiperID: "a", SwipedID: "b", Direction: "up"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordSwipe(ctx, &SwipeRequest{SwipedID: "b", Direction: DirectionLeft})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordSwipe(ctx, &SwipeRequest{SwiperID: "a", SwipedID: "a", Direction: DirectionRight})
	assert.ErrorIs(t, err, ErrSelfSwipe)
}

func TestGetSwipesByType(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	swipe(t, svc, "u1", "u2", DirectionRight)
	swipe(t, svc, "u1", "u3", DirectionLeft)
	swipe(t, svc, "u3", "u1", DirectionRight)

	sent, err := svc.GetSwipes(ctx, "u1", "sent")
	require.NoError(t, err)
	assert.Len(t, sent, 2)

	received, err := svc.GetSwipes(ctx, "u1", "received")
	require.NoError(t, err)
	assert.Len(t, received, 1)

	all, err := svc.GetSwipes(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetMatchesPaginationAndOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, other := range []string{"m1", "m2", "m3"} {
		swipe(t, svc, "me", other, DirectionRight)
		swipe(t, svc, other, "me", DirectionRight)
		time.Sleep(2 * time.Millisecond)
	}

	page1, page, err := svc.GetMatches(ctx, "me", "all", 2, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, 3, page.Total)
	assert.True(t, page.HasMore)

	page2, page, err := svc.GetMatches(ctx, "me", "all", 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)
	assert.False(t, page.HasMore)

	// Most recent activity first
	assert.True(t, page1[0].LastActivity.After(page1[1].LastActivity) ||
		page1[0].LastActivity.Equal(page1[1].LastActivity))
}

func TestArchiveMatchRequiresParticipant(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	swipe(t, svc, "a", "b", DirectionRight)
	result := swipe(t, svc, "b", "a", DirectionRight)
	require.True(t, result.IsMatch)

	err := svc.ArchiveMatch(ctx, result.Match.ID, "stranger")
	assert.ErrorIs(t, err, ErrNotParticipant)

	err = svc.ArchiveMatch(ctx, result.Match.ID, "a")
	require.NoError(t, err)

	// Soft delete: the record remains, archived
	archived, _, err := svc.GetMatches(ctx, "b", MatchStatusArchived, 20, 0)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, MatchStatusArchived, archived[0].Status)
	require.NotNil(t, archived[0].ArchivedBy)
	assert.Equal(t, "a", *archived[0].ArchivedBy)

	err = svc.ArchiveMatch(ctx, "match-missing", "a")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestListSwipedIDs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	swipe(t, svc, "me", "p1", DirectionLeft)
	swipe(t, svc, "me", "p2", DirectionRight)
	swipe(t, svc, "p3", "me", DirectionRight)

	ids, err := svc.ListSwipedIDs(ctx, "me")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids)
}
