// internal/contracts/dto.go
package contracts

// DTOs for API requests/responses

type SubmitContractRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	ContractType  string  `json:"contractType" validate:"omitempty,oneof=expected official"`
	ContractValue float64 `json:"contractValue" validate:"required,gt=0"`
	DealCount     int     `json:"dealCount" validate:"required,min=1"`
}

type VerifyContractRequest struct {
	ContractID string `json:"contractId" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=verified rejected"`
	AdminID    string `json:"adminId" validate:"required"`
}
