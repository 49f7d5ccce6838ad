// internal/messaging/service.go

package messaging

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrConversationRequired = errors.New("conversation id or match id is required")
	ErrNotRecipient         = errors.New("user is not the message recipient")
)

// Broadcaster delivers realtime events to connected clients. The hub
// implements it; a nil broadcaster disables realtime delivery.
type Broadcaster interface {
	Push(userID string, event string, data interface{})
}

// SendResult is what SendMessage returns: the stored message plus the
// conversation it landed in (which may have just been created).
type SendResult struct {
	Message        *Message `json:"message"`
	ConversationID string   `json:"conversationId"`
}

// MessagePage is one page of a conversation's messages.
type MessagePage struct {
	Messages     []*Message    `json:"messages"`
	Conversation *Conversation `json:"conversation"`
	Pagination   Pagination    `json:"pagination"`
}

// Service handles conversations and chat messages.
type Service interface {
	SendMessage(ctx context.Context, req SendMessageRequest) (*SendResult, error)
	GetConversations(ctx context.Context, userID string) ([]*Conversation, error)
	GetMessages(ctx context.Context, conversationID, userID string, limit, offset int) (*MessagePage, error)
	MarkRead(ctx context.Context, req MarkReadRequest) (*Message, error)
}

type service struct {
	repo      Repository
	broadcast Broadcaster
}

func NewService(repo Repository, broadcast Broadcaster) Service {
	return &service{repo: repo, broadcast: broadcast}
}

func (s *service) SendMessage(ctx context.Context, req SendMessageRequest) (*SendResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now().UTC()
	conversationID := req.ConversationID

	if conversationID == "" {
		if req.MatchID == "" {
			return nil, ErrConversationRequired
		}
		conversationID = fmt.Sprintf("conv-%s", uuid.New().String())
		conv := &Conversation{
			ID:           conversationID,
			Participants: []string{req.SenderID, req.RecipientID},
			MatchID:      req.MatchID,
			CreatedAt:    now,
			LastActivity: now,
			LastMessage:  req.Content,
		}
		if err := s.repo.InsertConversation(conv); err != nil {
			return nil, fmt.Errorf("create conversation: %w", err)
		}
	}

	msgType := req.Type
	if msgType == "" {
		msgType = MessageTypeText
	}

	msg := &Message{
		ID:             fmt.Sprintf("msg-%s", uuid.New().String()),
		ConversationID: conversationID,
		SenderID:       req.SenderID,
		RecipientID:    req.RecipientID,
		Content:        req.Content,
		Type:           msgType,
		Timestamp:      now,
		IsRead:         false,
	}
	if err := s.repo.InsertMessage(msg); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	if conv, ok := s.repo.GetConversation(conversationID); ok {
		conv.LastActivity = now
		conv.LastMessage = req.Content
		if err := s.repo.UpdateConversation(conv); err != nil {
			return nil, fmt.Errorf("update conversation: %w", err)
		}
	}

	messagesSentTotal.Inc()

	if s.broadcast != nil {
		s.broadcast.Push(req.RecipientID, WSEventMessage, msg)
	}

	return &SendResult{Message: msg, ConversationID: conversationID}, nil
}

func (s *service) GetConversations(ctx context.Context, userID string) ([]*Conversation, error) {
	out := make([]*Conversation, 0)
	for _, c := range s.repo.ListConversations() {
		if c.Involves(userID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out, nil
}

func (s *service) GetMessages(ctx context.Context, conversationID, userID string, limit, offset int) (*MessagePage, error) {
	conv, ok := s.repo.GetConversation(conversationID)
	if !ok || !conv.Involves(userID) {
		// Non-participants get the same answer as a missing thread.
		return nil, ErrConversationNotFound
	}

	all := s.repo.ListMessages(conversationID)
	sort.Slice(all, func(i, j int) bool {
		return all[i].Timestamp.Before(all[j].Timestamp)
	})

	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &MessagePage{
		Messages:     all[offset:end],
		Conversation: conv,
		Pagination: Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: end < total,
		},
	}, nil
}

func (s *service) MarkRead(ctx context.Context, req MarkReadRequest) (*Message, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msg, ok := s.repo.GetMessage(req.MessageID)
	if !ok {
		return nil, ErrMessageNotFound
	}
	if msg.RecipientID != req.UserID {
		return nil, ErrNotRecipient
	}

	msg.IsRead = req.IsRead
	if req.IsRead {
		now := time.Now().UTC()
		msg.ReadAt = &now
	} else {
		msg.ReadAt = nil
	}

	if err := s.repo.UpdateMessage(msg); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	return msg, nil
}
