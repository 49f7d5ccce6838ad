// internal/profiles/service.go

package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrProfileNotFound = errors.New("profile not found")
)

// SwipeChecker reports which profile ids a user has already swiped on.
// Discovery uses it to keep seen cards out of the deck.
type SwipeChecker interface {
	ListSwipedIDs(ctx context.Context, userID string) ([]string, error)
}

// Service manages profile discovery and lifecycle.
type Service interface {
	List(ctx context.Context, filters Filters) ([]*Profile, error)
	Create(ctx context.Context, req CreateProfileRequest) (*Profile, error)
	Update(ctx context.Context, profileID string, req UpdateProfileRequest) (*Profile, error)
}

type service struct {
	repo   Repository
	swipes SwipeChecker
}

// NewService wires the profile service. swipes may be nil, in which
// case discovery does not exclude already-seen profiles.
func NewService(repo Repository, swipes SwipeChecker) Service {
	return &service{repo: repo, swipes: swipes}
}

func (s *service) List(ctx context.Context, filters Filters) ([]*Profile, error) {
	var swiped map[string]bool
	if filters.RequesterID != "" && s.swipes != nil {
		ids, err := s.swipes.ListSwipedIDs(ctx, filters.RequesterID)
		if err != nil {
			return nil, fmt.Errorf("list swiped ids: %w", err)
		}
		swiped = make(map[string]bool, len(ids))
		for _, id := range ids {
			swiped[id] = true
		}
	}

	targetType := ""
	if filters.UserType != "" {
		targetType = OppositeType(filters.UserType)
	}

	out := make([]*Profile, 0)
	for _, p := range s.repo.List() {
		if !p.IsActive {
			continue
		}
		if targetType != "" && p.UserType != targetType {
			continue
		}
		if filters.Industry != "" && filters.Industry != "none" && p.Industry != filters.Industry {
			continue
		}
		if filters.BudgetSet {
			amount := p.InvestmentAmount()
			if amount < filters.BudgetMin || amount > filters.BudgetMax {
				continue
			}
		}
		if filters.RequesterID != "" {
			if p.UserID == filters.RequesterID || swiped[p.ID] {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req CreateProfileRequest) (*Profile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now().UTC()
	p := &Profile{
		ID:            fmt.Sprintf("%s-%s", req.UserType, uuid.New().String()),
		UserID:        req.UserID,
		UserType:      req.UserType,
		Name:          req.Name,
		Company:       req.Company,
		Location:      req.Location,
		Industry:      req.Industry,
		Description:   req.Description,
		Tags:          req.Tags,
		Images:        req.Images,
		FranchiseFee:  req.FranchiseFee,
		MinInvestment: req.MinInvestment,
		StoreCount:    req.StoreCount,
		Budget:        req.Budget,
		Experience:    req.Experience,
		IsActive:      true,
		Verified:      false,
		CreatedAt:     now,
	}
	if err := s.repo.Insert(p); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	profilesCreatedTotal.WithLabelValues(p.UserType).Inc()
	return p, nil
}

func (s *service) Update(ctx context.Context, profileID string, req UpdateProfileRequest) (*Profile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	p, ok := s.repo.Get(profileID)
	if !ok {
		return nil, ErrProfileNotFound
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Company != nil {
		p.Company = *req.Company
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Industry != nil {
		p.Industry = *req.Industry
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.FranchiseFee != nil {
		p.FranchiseFee = req.FranchiseFee
	}
	if req.MinInvestment != nil {
		p.MinInvestment = req.MinInvestment
	}
	if req.StoreCount != nil {
		p.StoreCount = req.StoreCount
	}
	if req.Budget != nil {
		p.Budget = req.Budget
	}
	if req.Experience != nil {
		p.Experience = req.Experience
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	now := time.Now().UTC()
	p.UpdatedAt = &now

	if err := s.repo.Update(p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}
