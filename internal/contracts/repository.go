// internal/contracts/repository.go

package contracts

import (
	"context"
	"sync"
	"time"
)

// Repository defines contract storage. The process keeps a single shared
// sequence of contracts with insertion order preserved; a database-backed
// implementation could replace the in-memory one behind this interface.
type Repository interface {
	Insert(ctx context.Context, contract *Contract) error
	Get(ctx context.Context, id string) (*Contract, error)
	List(ctx context.Context, userID string) ([]*Contract, error)
	// Finalize applies the one-shot pending -> verified/rejected
	// transition atomically.
	Finalize(ctx context.Context, id, status, adminID string) (*Contract, error)
}

type memoryRepository struct {
	mu        sync.RWMutex
	contracts []*Contract
}

// NewMemoryRepository creates an empty in-memory contract store
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Insert(ctx context.Context, contract *Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contracts = append(r.contracts, contract)
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrContractNotFound
}

func (r *memoryRepository) List(ctx context.Context, userID string) ([]*Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		if userID != "" && c.UserID != userID {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *memoryRepository) Finalize(ctx context.Context, id, status, adminID string) (*Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contracts {
		if c.ID != id {
			continue
		}
		// Verification is terminal: two racing calls cannot both win
		// because the status check happens under the write lock.
		if c.Status != StatusPending {
			return nil, ErrAlreadyFinalized
		}

		now := time.Now()
		c.Status = status
		c.VerifiedAt = &now
		c.VerifiedBy = &adminID
		return c, nil
	}
	return nil, ErrContractNotFound
}
