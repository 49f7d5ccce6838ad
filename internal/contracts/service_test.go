package contracts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifierStub struct {
	reviewed []string
}

func (n *notifierStub) NotifyContractReviewed(ctx context.Context, userID, contractID, status string) error {
	n.reviewed = append(n.reviewed, contractID+":"+status)
	return nil
}

func newTestService() (Service, Repository, *notifierStub) {
	repo := NewMemoryRepository()
	notifier := &notifierStub{}
	return NewService(repo, nil, notifier), repo, notifier
}

func TestSubmitCreatesPendingContract(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	contract, err := svc.Submit(ctx, &SubmitContractRequest{
		UserID:        "user-1",
		ContractType:  TypeExpected,
		ContractValue: 120_000_000,
		DealCount:     2,
	}, nil, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(contract.ID, "contract_"))
	assert.Equal(t, StatusPending, contract.Status)
	assert.Nil(t, contract.VerifiedAt)
	assert.Nil(t, contract.Evidence)
	assert.False(t, contract.CreatedAt.IsZero())

	stored, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *SubmitContractRequest
	}{
		{"missing userId", &SubmitContractRequest{ContractValue: 1_000_000, DealCount: 1}},
		{"missing dealCount", &SubmitContractRequest{UserID: "u", ContractValue: 1_000_000}},
		{"zero contractValue", &SubmitContractRequest{UserID: "u", ContractValue: 0, DealCount: 1}},
		{"invalid contractType", &SubmitContractRequest{UserID: "u", ContractType: "guess", ContractValue: 1, DealCount: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			ctx := context.Background()

			_, err := svc.Submit(ctx, tt.req, nil, nil)
			assert.ErrorIs(t, err, ErrValidation)

			// A rejected submission must not grow the store
			stored, err := repo.List(ctx, "")
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestVerifyHappyPath(t *testing.T) {
	svc, _, notifier := newTestService()
	ctx := context.Background()

	contract, err := svc.Submit(ctx, &SubmitContractRequest{
		UserID:        "user-9",
		ContractValue: 60_000_000,
		DealCount:     1,
	}, nil, nil)
	require.NoError(t, err)

	verified, err := svc.Verify(ctx, &VerifyContractRequest{
		ContractID: contract.ID,
		Status:     StatusVerified,
		AdminID:    "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusVerified, verified.Status)
	require.NotNil(t, verified.VerifiedAt)
	require.NotNil(t, verified.VerifiedBy)
	assert.Equal(t, "admin-1", *verified.VerifiedBy)
	assert.Equal(t, []string{contract.ID + ":verified"}, notifier.reviewed)
}

func TestVerifyUnknownContract(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Verify(ctx, &VerifyContractRequest{
		ContractID: "contract_missing",
		Status:     StatusRejected,
		AdminID:    "admin-1",
	})
	assert.ErrorIs(t, err, ErrContractNotFound)

	stored, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestVerifyInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	contract, err := svc.Submit(ctx, &SubmitContractRequest{
		UserID:        "user-2",
		ContractValue: 10_000_000,
		DealCount:     1,
	}, nil, nil)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, &VerifyContractRequest{
		ContractID: contract.ID,
		Status:     "approved",
		AdminID:    "admin-1",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StatusPending, contract.Status)
}

func TestVerifyIsTerminal(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	contract, err := svc.Submit(ctx, &SubmitContractRequest{
		UserID:        "user-3",
		ContractValue: 750_000_000,
		DealCount:     3,
	}, nil, nil)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, &VerifyContractRequest{
		ContractID: contract.ID,
		Status:     StatusRejected,
		AdminID:    "admin-1",
	})
	require.NoError(t, err)

	// A second decision, even with the same status, is a conflict
	_, err = svc.Verify(ctx, &VerifyContractRequest{
		ContractID: contract.ID,
		Status:     StatusVerified,
		AdminID:    "admin-2",
	})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)

	assert.Equal(t, StatusRejected, contract.Status)
	assert.Equal(t, "admin-1", *contract.VerifiedBy)
}

func TestListFiltersByUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, userID := range []string{"a", "b", "a"} {
		_, err := svc.Submit(ctx, &SubmitContractRequest{
			UserID:        userID,
			ContractValue: 20_000_000,
			DealCount:     1,
		}, nil, nil)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.List(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, c := range mine {
		assert.Equal(t, "a", c.UserID)
	}
}
