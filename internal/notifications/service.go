// internal/notifications/service.go

package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotOwner             = errors.New("user does not own this notification")
)

// Pusher delivers realtime events to connected clients. A nil pusher
// disables realtime delivery.
type Pusher interface {
	Push(userID string, event string, data interface{})
}

// Service creates and manages user notifications. External channels
// (email, SMS) are best effort and never fail the triggering action.
type Service interface {
	NotifyMatch(ctx context.Context, userID, matchID string) error
	NotifyContractReviewed(ctx context.Context, userID, contractID, status string) error
	List(ctx context.Context, userID string) ([]*Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) (*Notification, error)
}

// Options configure external delivery channels. Any nil provider or
// disabled flag turns that channel off.
type Options struct {
	Email        EmailProvider
	SMS          SMSProvider
	Directory    ContactDirectory
	Pusher       Pusher
	EmailEnabled bool
	SMSEnabled   bool
}

type service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) Service {
	return &service{repo: repo, opts: opts}
}

func (s *service) NotifyMatch(ctx context.Context, userID, matchID string) error {
	n := &Notification{
		ID:        fmt.Sprintf("notif-%s", uuid.New().String()),
		UserID:    userID,
		Type:      TypeMatch,
		Title:     "It's a Match!",
		Message:   "You have a new franchise match. Start the conversation!",
		MatchID:   &matchID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(n); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	notificationsCreatedTotal.WithLabelValues(TypeMatch).Inc()
	s.fanOut(ctx, n)
	return nil
}

func (s *service) NotifyContractReviewed(ctx context.Context, userID, contractID, status string) error {
	notifType := TypeContractVerified
	title := "Contract Verified"
	message := "Your contract evidence has been verified. Your connection fee is now confirmed."
	if status == "rejected" {
		notifType = TypeContractRejected
		title = "Contract Rejected"
		message = "Your contract evidence was rejected. Please review and submit again."
	}

	n := &Notification{
		ID:         fmt.Sprintf("notif-%s", uuid.New().String()),
		UserID:     userID,
		Type:       notifType,
		Title:      title,
		Message:    message,
		ContractID: &contractID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Insert(n); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	notificationsCreatedTotal.WithLabelValues(notifType).Inc()
	s.fanOut(ctx, n)
	return nil
}

func (s *service) List(ctx context.Context, userID string) ([]*Notification, error) {
	return s.repo.ListByUser(userID), nil
}

func (s *service) MarkRead(ctx context.Context, notificationID, userID string) (*Notification, error) {
	n, ok := s.repo.Get(notificationID)
	if !ok {
		return nil, ErrNotificationNotFound
	}
	if n.UserID != userID {
		return nil, ErrNotOwner
	}

	now := time.Now().UTC()
	n.IsRead = true
	n.ReadAt = &now

	if err := s.repo.Update(n); err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return n, nil
}

// fanOut pushes the notification to realtime and external channels.
// Failures are logged, never returned.
func (s *service) fanOut(ctx context.Context, n *Notification) {
	if s.opts.Pusher != nil {
		s.opts.Pusher.Push(n.UserID, "notification", n)
	}

	if s.opts.Directory == nil {
		return
	}
	contact, ok := s.opts.Directory.Lookup(n.UserID)
	if !ok {
		return
	}

	if s.opts.EmailEnabled && s.opts.Email != nil && contact.Email != "" {
		email := &Email{To: contact.Email, Subject: n.Title, Body: n.Message}
		if err := s.opts.Email.SendEmail(ctx, email); err != nil {
			log.Printf("Failed to send notification email to %s: %v", n.UserID, err)
		}
	}

	if s.opts.SMSEnabled && s.opts.SMS != nil && contact.Phone != "" {
		sms := &SMSMessage{To: contact.Phone, Message: fmt.Sprintf("%s: %s", n.Title, n.Message)}
		if err := s.opts.SMS.SendSMS(ctx, sms); err != nil {
			log.Printf("Failed to send notification SMS to %s: %v", n.UserID, err)
		}
	}
}
