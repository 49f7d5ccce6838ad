// internal/contracts/service.go

package contracts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/franmatch/franmatch-backend/internal/common/utils"
)

var (
	ErrValidation       = errors.New("invalid contract request")
	ErrContractNotFound = errors.New("contract not found")
	ErrAlreadyFinalized = errors.New("contract already verified or rejected")
)

// Notifier delivers a review-result notification to the contract owner
type Notifier interface {
	NotifyContractReviewed(ctx context.Context, userID, contractID, status string) error
}

type Service interface {
	Submit(ctx context.Context, req *SubmitContractRequest, file multipart.File, header *multipart.FileHeader) (*Contract, error)
	List(ctx context.Context, userID string) ([]*Contract, error)
	Verify(ctx context.Context, req *VerifyContractRequest) (*Contract, error)
}

type service struct {
	repo     Repository
	uploads  UploadService
	notifier Notifier
}

func NewService(repo Repository, uploads UploadService, notifier Notifier) Service {
	return &service{
		repo:     repo,
		uploads:  uploads,
		notifier: notifier,
	}
}

// Submit validates and appends a new pending contract. The evidence file
// is optional; when present it is stored before the record is created.
func (s *service) Submit(ctx context.Context, req *SubmitContractRequest, file multipart.File, header *multipart.FileHeader) (*Contract, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	contract := &Contract{
		ID:            fmt.Sprintf("contract_%s", uuid.New().String()),
		UserID:        req.UserID,
		ContractType:  req.ContractType,
		ContractValue: req.ContractValue,
		DealCount:     req.DealCount,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}

	if file != nil && header != nil {
		url, err := s.uploads.UploadEvidence(ctx, file, header)
		if err != nil {
			return nil, fmt.Errorf("failed to store evidence: %w", err)
		}
		contract.Evidence = &Evidence{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			URL:         url,
		}
	}

	if err := s.repo.Insert(ctx, contract); err != nil {
		return nil, err
	}

	RecordContractSubmitted()
	ObserveConnectionFee(ConnectionFee(contract.ContractValue))

	return contract, nil
}

func (s *service) List(ctx context.Context, userID string) ([]*Contract, error) {
	return s.repo.List(ctx, userID)
}

// Verify transitions a pending contract to verified or rejected. The
// transition is terminal; repeated verification attempts fail with
// ErrAlreadyFinalized.
func (s *service) Verify(ctx context.Context, req *VerifyContractRequest) (*Contract, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	contract, err := s.repo.Finalize(ctx, req.ContractID, req.Status, req.AdminID)
	if err != nil {
		return nil, err
	}

	RecordContractReviewed(req.Status)

	if s.notifier != nil {
		if err := s.notifier.NotifyContractReviewed(ctx, contract.UserID, contract.ID, contract.Status); err != nil {
			log.Printf("Failed to notify user %s of contract review: %v", contract.UserID, err)
		}
	}

	return contract, nil
}
