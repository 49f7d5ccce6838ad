// internal/profiles/repository.go

package profiles

import (
	"sync"
	"time"
)

// Repository stores profiles.
type Repository interface {
	Insert(p *Profile) error
	Get(id string) (*Profile, bool)
	Update(p *Profile) error
	List() []*Profile
}

type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	order    []string
}

// NewMemoryRepository returns an empty in-memory profile store.
func NewMemoryRepository() Repository {
	return &memoryRepository{profiles: make(map[string]*Profile)}
}

func (r *memoryRepository) Insert(p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.profiles[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.profiles[p.ID] = p
	return nil
}

func (r *memoryRepository) Get(id string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

func (r *memoryRepository) Update(p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

func (r *memoryRepository) List() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Profile, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.profiles[id]
		out = append(out, &cp)
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

// SeedProfiles returns the demo brand and investor cards loaded at
// startup so discovery works before anyone registers.
func SeedProfiles() []*Profile {
	return []*Profile{
		{
			ID:            "brand-1",
			UserID:        "user-1",
			UserType:      TypeBrand,
			Name:          "Sarah Johnson",
			Company:       "QuickBite Burgers",
			Location:      "San Francisco, CA",
			Industry:      "Fast Food",
			Description:   "Proven fast-casual burger concept with 15+ years of success. Looking for expansion partners in key metropolitan areas.",
			FranchiseFee:  floatPtr(45000),
			MinInvestment: floatPtr(250000),
			StoreCount:    intPtr(127),
			Tags:          []string{"Fast Casual", "Proven Model", "High ROI", "Training Included"},
			Images:        []string{"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b"},
			IsActive:      true,
			CreatedAt:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "investor-1",
			UserID:      "user-2",
			UserType:    TypeInvestor,
			Name:        "David Park",
			Company:     "Park Investment Group",
			Location:    "Seattle, WA",
			Industry:    "Multi-Unit Development",
			Description: "Experienced multi-unit operator seeking scalable franchise opportunities in the Pacific Northwest region.",
			Budget:      floatPtr(500000),
			Experience:  strPtr("10+ years"),
			Tags:        []string{"Multi-Unit", "Experienced", "Pacific NW", "Growth Focused"},
			Images:      []string{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d"},
			IsActive:    true,
			CreatedAt:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
	}
}
