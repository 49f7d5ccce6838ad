// internal/messaging/service_test.go

package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type broadcasterStub struct {
	pushes []string // "userID:event"
}

func (b *broadcasterStub) Push(userID string, event string, _ interface{}) {
	b.pushes = append(b.pushes, userID+":"+event)
}

func seededRepo(t *testing.T) Repository {
	t.Helper()
	repo := NewMemoryRepository()
	conversations, messages := SeedConversations()
	for _, c := range conversations {
		require.NoError(t, repo.InsertConversation(c))
	}
	for _, m := range messages {
		require.NoError(t, repo.InsertMessage(m))
	}
	return repo
}

func TestSendMessageCreatesConversationFromMatch(t *testing.T) {
	repo := NewMemoryRepository()
	broadcast := &broadcasterStub{}
	svc := NewService(repo, broadcast)

	result, err := svc.SendMessage(context.Background(), SendMessageRequest{
		SenderID:    "user-1",
		RecipientID: "user-2",
		Content:     "Hello!",
		MatchID:     "match-9",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ConversationID)
	assert.Equal(t, result.ConversationID, result.Message.ConversationID)
	assert.Equal(t, MessageTypeText, result.Message.Type)
	assert.False(t, result.Message.IsRead)

	conv, ok := repo.GetConversation(result.ConversationID)
	require.True(t, ok)
	assert.Equal(t, "match-9", conv.MatchID)
	assert.ElementsMatch(t, []string{"user-1", "user-2"}, conv.Participants)
	assert.Equal(t, "Hello!", conv.LastMessage)

	// Recipient got a realtime push
	assert.Equal(t, []string{"user-2:" + WSEventMessage}, broadcast.pushes)
}

func TestSendMessageRequiresConversationOrMatch(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	_, err := svc.SendMessage(context.Background(), SendMessageRequest{
		SenderID:    "user-1",
		RecipientID: "user-2",
		Content:     "orphan",
	})
	assert.ErrorIs(t, err, ErrConversationRequired)
}

func TestSendMessageUpdatesExistingConversation(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo, nil)

	result, err := svc.SendMessage(context.Background(), SendMessageRequest{
		ConversationID: "conv-1",
		SenderID:       "current-user",
		RecipientID:    "user-1",
		Content:        "Let's set up a call.",
	})
	require.NoError(t, err)
	assert.Equal(t, "conv-1", result.ConversationID)

	conv, ok := repo.GetConversation("conv-1")
	require.True(t, ok)
	assert.Equal(t, "Let's set up a call.", conv.LastMessage)
	assert.Len(t, repo.ListMessages("conv-1"), 4)
}

func TestSendMessageValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	cases := []SendMessageRequest{
		{RecipientID: "u2", Content: "hi", MatchID: "m1"},
		{SenderID: "u1", Content: "hi", MatchID: "m1"},
		{SenderID: "u1", RecipientID: "u2", MatchID: "m1"},
		{SenderID: "u1", RecipientID: "u2", Content: "hi", MatchID: "m1", Type: "video"},
	}
	for _, req := range cases {
		_, err := svc.SendMessage(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestGetConversationsFiltersByParticipant(t *testing.T) {
	svc := NewService(seededRepo(t), nil)

	conversations, err := svc.GetConversations(context.Background(), "current-user")
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "conv-1", conversations[0].ID)

	conversations, err = svc.GetConversations(context.Background(), "stranger")
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestGetMessagesPagination(t *testing.T) {
	svc := NewService(seededRepo(t), nil)

	page, err := svc.GetMessages(context.Background(), "conv-1", "current-user", 2, 0)
	require.NoError(t, err)
	require.Len(t, page.Messages, 2)
	assert.Equal(t, "msg-1", page.Messages[0].ID)
	assert.Equal(t, "msg-2", page.Messages[1].ID)
	assert.Equal(t, Pagination{Total: 3, Limit: 2, Offset: 0, HasMore: true}, page.Pagination)

	page, err = svc.GetMessages(context.Background(), "conv-1", "current-user", 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, "msg-3", page.Messages[0].ID)
	assert.False(t, page.Pagination.HasMore)
}

func TestGetMessagesHidesThreadFromOutsiders(t *testing.T) {
	svc := NewService(seededRepo(t), nil)

	_, err := svc.GetMessages(context.Background(), "conv-1", "stranger", 50, 0)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = svc.GetMessages(context.Background(), "conv-404", "current-user", 50, 0)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestMarkReadRecipientOnly(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo, nil)

	msg, err := svc.MarkRead(context.Background(), MarkReadRequest{
		MessageID: "msg-3",
		UserID:    "current-user",
		IsRead:    true,
	})
	require.NoError(t, err)
	assert.True(t, msg.IsRead)
	require.NotNil(t, msg.ReadAt)

	// The sender cannot mark their own message read
	_, err = svc.MarkRead(context.Background(), MarkReadRequest{
		MessageID: "msg-3",
		UserID:    "user-1",
		IsRead:    true,
	})
	assert.ErrorIs(t, err, ErrNotRecipient)

	_, err = svc.MarkRead(context.Background(), MarkReadRequest{
		MessageID: "msg-404",
		UserID:    "current-user",
		IsRead:    true,
	})
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMarkUnreadClearsReadAt(t *testing.T) {
	repo := seededRepo(t)
	svc := NewService(repo, nil)

	msg, err := svc.MarkRead(context.Background(), MarkReadRequest{
		MessageID: "msg-1",
		UserID:    "current-user",
		IsRead:    false,
	})
	require.NoError(t, err)
	assert.False(t, msg.IsRead)
	assert.Nil(t, msg.ReadAt)
}
