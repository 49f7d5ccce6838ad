// internal/profiles/service_test.go

package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swipeCheckerStub struct {
	swiped map[string][]string
}

func (s *swipeCheckerStub) ListSwipedIDs(_ context.Context, userID string) ([]string, error) {
	return s.swiped[userID], nil
}

func seededService(t *testing.T, swipes SwipeChecker) Service {
	t.Helper()
	repo := NewMemoryRepository()
	for _, p := range SeedProfiles() {
		require.NoError(t, repo.Insert(p))
	}
	return NewService(repo, swipes)
}

func TestListShowsOppositeTypeOnly(t *testing.T) {
	svc := seededService(t, nil)

	list, err := svc.List(context.Background(), Filters{UserType: TypeBrand})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, TypeInvestor, list[0].UserType)
	assert.Equal(t, "David Park", list[0].Name)

	list, err = svc.List(context.Background(), Filters{UserType: TypeInvestor})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, TypeBrand, list[0].UserType)
}

func TestListExcludesSwipedAndOwnProfiles(t *testing.T) {
	swipes := &swipeCheckerStub{swiped: map[string][]string{
		"user-1": {"investor-1"},
	}}
	svc := seededService(t, swipes)

	// user-1 already swiped on the only investor; the deck is empty.
	list, err := svc.List(context.Background(), Filters{UserType: TypeBrand, RequesterID: "user-1"})
	require.NoError(t, err)
	assert.Empty(t, list)

	// Own profile is never shown even without swipes.
	list, err = svc.List(context.Background(), Filters{RequesterID: "user-2"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "brand-1", list[0].ID)
}

func TestListIndustryAndBudgetFilters(t *testing.T) {
	svc := seededService(t, nil)

	list, err := svc.List(context.Background(), Filters{Industry: "Fast Food"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "brand-1", list[0].ID)

	// "none" disables the industry filter.
	list, err = svc.List(context.Background(), Filters{Industry: "none"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Investor budget 500k is in range, brand minInvestment 250k is not.
	list, err = svc.List(context.Background(), Filters{BudgetSet: true, BudgetMin: 300000, BudgetMax: 600000})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "investor-1", list[0].ID)
}

func TestListSkipsInactiveProfiles(t *testing.T) {
	repo := NewMemoryRepository()
	seeds := SeedProfiles()
	seeds[0].IsActive = false
	for _, p := range seeds {
		require.NoError(t, repo.Insert(p))
	}
	svc := NewService(repo, nil)

	list, err := svc.List(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "investor-1", list[0].ID)
}

func TestCreateProfile(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)

	budget := 750000.0
	profile, err := svc.Create(context.Background(), CreateProfileRequest{
		UserID:   "user-9",
		UserType: TypeInvestor,
		Name:     "Maria Chen",
		Company:  "Chen Capital",
		Budget:   &budget,
	})
	require.NoError(t, err)
	assert.Contains(t, profile.ID, "investor-")
	assert.True(t, profile.IsActive)
	assert.False(t, profile.Verified)
	assert.False(t, profile.CreatedAt.IsZero())

	stored, ok := repo.Get(profile.ID)
	require.True(t, ok)
	assert.Equal(t, "Maria Chen", stored.Name)
}

func TestCreateProfileValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	cases := []CreateProfileRequest{
		{UserType: TypeBrand, Name: "No User", Company: "Acme"},
		{UserID: "u1", UserType: "franchisee", Name: "Bad Type", Company: "Acme"},
		{UserID: "u1", UserType: TypeBrand, Company: "Missing Name"},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := seededService(t, nil)

	name := "Sarah J. Johnson"
	inactive := false
	updated, err := svc.Update(context.Background(), "brand-1", UpdateProfileRequest{
		Name:     &name,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah J. Johnson", updated.Name)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.UpdatedAt)

	// Untouched fields survive a partial update.
	assert.Equal(t, "QuickBite Burgers", updated.Company)

	_, err = svc.Update(context.Background(), "brand-404", UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestInvestmentAmountFallback(t *testing.T) {
	budget := 100000.0
	minInv := 50000.0

	assert.Equal(t, 100000.0, (&Profile{Budget: &budget}).InvestmentAmount())
	assert.Equal(t, 50000.0, (&Profile{MinInvestment: &minInv}).InvestmentAmount())
	assert.Equal(t, 0.0, (&Profile{}).InvestmentAmount())
}
