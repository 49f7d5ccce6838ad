// internal/notifications/repository.go

package notifications

import "sync"

// Repository stores notifications.
type Repository interface {
	Insert(n *Notification) error
	Get(id string) (*Notification, bool)
	Update(n *Notification) error
	ListByUser(userID string) []*Notification
}

type memoryRepository struct {
	mu            sync.RWMutex
	notifications map[string]*Notification
	order         []string
}

// NewMemoryRepository returns an empty in-memory notification store.
func NewMemoryRepository() Repository {
	return &memoryRepository{notifications: make(map[string]*Notification)}
}

func (r *memoryRepository) Insert(n *Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.notifications[n.ID]; !exists {
		r.order = append(r.order, n.ID)
	}
	r.notifications[n.ID] = n
	return nil
}

func (r *memoryRepository) Get(id string) (*Notification, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notifications[id]
	if !ok {
		return nil, false
	}
	cp := *n
	return &cp, true
}

func (r *memoryRepository) Update(n *Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[n.ID] = n
	return nil
}

func (r *memoryRepository) ListByUser(userID string) []*Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Notification, 0)
	// Newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		n := r.notifications[r.order[i]]
		if n.UserID != userID {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	return out
}

// ContactDirectory resolves a user's email and phone for external
// delivery channels.
type ContactDirectory interface {
	Lookup(userID string) (Contact, bool)
}

// MemoryDirectory is a map-backed ContactDirectory.
type MemoryDirectory struct {
	mu       sync.RWMutex
	contacts map[string]Contact
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{contacts: make(map[string]Contact)}
}

func (d *MemoryDirectory) Set(userID string, c Contact) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contacts[userID] = c
}

func (d *MemoryDirectory) Lookup(userID string) (Contact, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.contacts[userID]
	return c, ok
}
