// internal/notifications/service_test.go

package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pusherStub struct {
	events []string // "userID:event"
}

func (p *pusherStub) Push(userID string, event string, _ interface{}) {
	p.events = append(p.events, userID+":"+event)
}

func TestNotifyMatchCreatesNotification(t *testing.T) {
	repo := NewMemoryRepository()
	pusher := &pusherStub{}
	svc := NewService(repo, Options{Pusher: pusher})

	require.NoError(t, svc.NotifyMatch(context.Background(), "user-1", "match-7"))

	list := repo.ListByUser("user-1")
	require.Len(t, list, 1)
	n := list[0]
	assert.Equal(t, TypeMatch, n.Type)
	assert.Equal(t, "It's a Match!", n.Title)
	require.NotNil(t, n.MatchID)
	assert.Equal(t, "match-7", *n.MatchID)
	assert.False(t, n.IsRead)

	assert.Equal(t, []string{"user-1:notification"}, pusher.events)
}

func TestNotifyContractReviewed(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, Options{})

	require.NoError(t, svc.NotifyContractReviewed(context.Background(), "user-1", "contract_1", "verified"))
	require.NoError(t, svc.NotifyContractReviewed(context.Background(), "user-1", "contract_2", "rejected"))

	list := repo.ListByUser("user-1")
	require.Len(t, list, 2)
	// Newest first
	assert.Equal(t, TypeContractRejected, list[0].Type)
	assert.Equal(t, TypeContractVerified, list[1].Type)
	require.NotNil(t, list[1].ContractID)
	assert.Equal(t, "contract_1", *list[1].ContractID)
}

func TestExternalChannelsUseContactDirectory(t *testing.T) {
	repo := NewMemoryRepository()
	email := NewMockEmailProvider()
	sms := NewMockSMSProvider()
	directory := NewMemoryDirectory()
	directory.Set("user-1", Contact{Email: "sarah@quickbite.example", Phone: "+14155550100"})

	svc := NewService(repo, Options{
		Email:        email,
		SMS:          sms,
		Directory:    directory,
		EmailEnabled: true,
		SMSEnabled:   true,
	})

	require.NoError(t, svc.NotifyMatch(context.Background(), "user-1", "match-1"))
	require.Len(t, email.SentEmails, 1)
	assert.Equal(t, "sarah@quickbite.example", email.SentEmails[0].To)
	assert.Equal(t, "It's a Match!", email.SentEmails[0].Subject)
	require.Len(t, sms.SentMessages, 1)
	assert.Equal(t, "+14155550100", sms.SentMessages[0].To)

	// Users without contact info get the in-app notification only.
	require.NoError(t, svc.NotifyMatch(context.Background(), "user-2", "match-1"))
	assert.Len(t, email.SentEmails, 1)
	assert.Len(t, sms.SentMessages, 1)
	assert.Len(t, repo.ListByUser("user-2"), 1)
}

func TestDisabledChannelsStaySilent(t *testing.T) {
	email := NewMockEmailProvider()
	directory := NewMemoryDirectory()
	directory.Set("user-1", Contact{Email: "sarah@quickbite.example"})

	svc := NewService(NewMemoryRepository(), Options{
		Email:     email,
		Directory: directory,
		// EmailEnabled left false
	})

	require.NoError(t, svc.NotifyMatch(context.Background(), "user-1", "match-1"))
	assert.Empty(t, email.SentEmails)
}

func TestMarkReadOwnerOnly(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, Options{})

	require.NoError(t, svc.NotifyMatch(context.Background(), "user-1", "match-1"))
	id := repo.ListByUser("user-1")[0].ID

	n, err := svc.MarkRead(context.Background(), id, "user-1")
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	require.NotNil(t, n.ReadAt)

	_, err = svc.MarkRead(context.Background(), id, "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.MarkRead(context.Background(), "notif-404", "user-1")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
