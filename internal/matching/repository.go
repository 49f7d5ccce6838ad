// internal/matching/repository.go

package matching

import (
	"context"
	"sync"
)

// Repository defines swipe and match storage
type Repository interface {
	SaveSwipe(ctx context.Context, swipe *SwipeAction) error
	GetSwipe(ctx context.Context, id string) (*SwipeAction, error)
	ListSwipes(ctx context.Context) ([]*SwipeAction, error)

	CreateMatch(ctx context.Context, match *Match) error
	GetMatch(ctx context.Context, id string) (*Match, error)
	ListMatches(ctx context.Context) ([]*Match, error)
	UpdateMatch(ctx context.Context, match *Match) error
}

type memoryRepository struct {
	mu      sync.RWMutex
	swipes  map[string]*SwipeAction
	matches map[string]*Match
}

// NewMemoryRepository creates an empty in-memory swipe/match store
func NewMemoryRepository() Repository {
	return &memoryRepository{
		swipes:  make(map[string]*SwipeAction),
		matches: make(map[string]*Match),
	}
}

func (r *memoryRepository) SaveSwipe(ctx context.Context, swipe *SwipeAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Overwrite-on-same-key gives per-pair idempotency
	r.swipes[swipe.ID] = swipe
	return nil
}

func (r *memoryRepository) GetSwipe(ctx context.Context, id string) (*SwipeAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swipe, ok := r.swipes[id]
	if !ok {
		return nil, ErrSwipeNotFound
	}
	return swipe, nil
}

func (r *memoryRepository) ListSwipes(ctx context.Context) ([]*SwipeAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*SwipeAction, 0, len(r.swipes))
	for _, s := range r.swipes {
		result = append(result, s)
	}
	return result, nil
}

func (r *memoryRepository) CreateMatch(ctx context.Context, match *Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[match.ID] = match
	return nil
}

func (r *memoryRepository) GetMatch(ctx context.Context, id string) (*Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match, ok := r.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return match, nil
}

func (r *memoryRepository) ListMatches(ctx context.Context) ([]*Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Match, 0, len(r.matches))
	for _, m := range r.matches {
		result = append(result, m)
	}
	return result, nil
}

func (r *memoryRepository) UpdateMatch(ctx context.Context, match *Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[match.ID]; !ok {
		return ErrMatchNotFound
	}
	r.matches[match.ID] = match
	return nil
}
