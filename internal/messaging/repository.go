// internal/messaging/repository.go

package messaging

import (
	"sync"
	"time"
)

// Repository stores conversations and messages.
type Repository interface {
	InsertConversation(c *Conversation) error
	GetConversation(id string) (*Conversation, bool)
	UpdateConversation(c *Conversation) error
	ListConversations() []*Conversation

	InsertMessage(m *Message) error
	GetMessage(id string) (*Message, bool)
	UpdateMessage(m *Message) error
	ListMessages(conversationID string) []*Message
}

type memoryRepository struct {
	mu            sync.RWMutex
	conversations map[string]*Conversation
	messages      map[string]*Message
	messageOrder  []string
}

// NewMemoryRepository returns an empty in-memory message store.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		conversations: make(map[string]*Conversation),
		messages:      make(map[string]*Message),
	}
}

func (r *memoryRepository) InsertConversation(c *Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations[c.ID] = c
	return nil
}

func (r *memoryRepository) GetConversation(id string) (*Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conversations[id]
	if !ok {
		return nil, false
	}
	cp := *c
	cp.Participants = append([]string(nil), c.Participants...)
	return &cp, true
}

func (r *memoryRepository) UpdateConversation(c *Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations[c.ID] = c
	return nil
}

func (r *memoryRepository) ListConversations() []*Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Conversation, 0, len(r.conversations))
	for _, c := range r.conversations {
		cp := *c
		cp.Participants = append([]string(nil), c.Participants...)
		out = append(out, &cp)
	}
	return out
}

func (r *memoryRepository) InsertMessage(m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.messages[m.ID]; !exists {
		r.messageOrder = append(r.messageOrder, m.ID)
	}
	r.messages[m.ID] = m
	return nil
}

func (r *memoryRepository) GetMessage(id string) (*Message, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, false
	}
	cp := *m
	return &cp, true
}

func (r *memoryRepository) UpdateMessage(m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[m.ID] = m
	return nil
}

func (r *memoryRepository) ListMessages(conversationID string) []*Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Message, 0)
	for _, id := range r.messageOrder {
		m := r.messages[id]
		if m.ConversationID != conversationID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out
}

// SeedConversations returns a demo thread so the chat screen has
// content before any match is made.
func SeedConversations() ([]*Conversation, []*Message) {
	conversations := []*Conversation{
		{
			ID:           "conv-1",
			Participants: []string{"current-user", "user-1"},
			MatchID:      "match-1",
			CreatedAt:    time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			LastActivity: time.Date(2024, 1, 15, 16, 45, 0, 0, time.UTC),
			LastMessage:  "I'd like to discuss franchise terms for the Seattle market.",
		},
	}
	messages := []*Message{
		{
			ID:             "msg-1",
			ConversationID: "conv-1",
			SenderID:       "user-1",
			RecipientID:    "current-user",
			Content:        "Hi John! I'm interested in learning more about your investment criteria for the Seattle market.",
			Type:           MessageTypeText,
			Timestamp:      time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			IsRead:         true,
		},
		{
			ID:             "msg-2",
			ConversationID: "conv-1",
			SenderID:       "current-user",
			RecipientID:    "user-1",
			Content:        "Hello Sarah! I'd be happy to discuss this further. What specific aspects would you like to know more about?",
			Type:           MessageTypeText,
			Timestamp:      time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
			IsRead:         true,
		},
		{
			ID:             "msg-3",
			ConversationID: "conv-1",
			SenderID:       "user-1",
			RecipientID:    "current-user",
			Content:        "I'd like to discuss franchise terms for the Seattle market. We're seeing strong growth potential there.",
			Type:           MessageTypeText,
			Timestamp:      time.Date(2024, 1, 15, 16, 45, 0, 0, time.UTC),
			IsRead:         false,
		},
	}
	return conversations, messages
}
