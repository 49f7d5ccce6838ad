// internal/contracts/seed.go
// Demo contracts loaded on startup so the admin review queue is
// populated on a fresh process. State resets on restart by design.

package contracts

import "time"

func SeedContracts() []*Contract {
	return []*Contract{
		{
			ID:            "contract_1765797338941",
			UserID:        "1765795838114",
			ContractType:  TypeOfficial,
			ContractValue: 5_000_000,
			DealCount:     1,
			Evidence: &Evidence{
				Name:        "signed-franchise-agreement.pdf",
				Size:        123456,
				ContentType: "application/pdf",
				URL:         "/uploads/contracts/1765797338941_signed-franchise-agreement.pdf",
			},
			Status:    StatusPending,
			CreatedAt: time.Date(2025, 12, 15, 18, 15, 38, 941000000, time.UTC),
		},
		{
			ID:            "contract_1765799252945",
			UserID:        "1765798812003",
			ContractType:  TypeExpected,
			ContractValue: 50_000_000,
			DealCount:     1,
			Evidence: &Evidence{
				Name:        "letter-of-intent.pdf",
				Size:        123456,
				ContentType: "application/pdf",
				URL:         "/uploads/contracts/1765799252945_letter-of-intent.pdf",
			},
			Status:    StatusPending,
			CreatedAt: time.Date(2025, 12, 15, 18, 47, 32, 945000000, time.UTC),
		},
		{
			ID:            "contract_1765799292478",
			UserID:        "1765798812003",
			ContractType:  TypeExpected,
			ContractValue: 99_999_999,
			DealCount:     1,
			Evidence: &Evidence{
				Name:        "letter-of-intent.pdf",
				Size:        123456,
				ContentType: "application/pdf",
				URL:         "/uploads/contracts/1765799292478_letter-of-intent.pdf",
			},
			Status:    StatusPending,
			CreatedAt: time.Date(2025, 12, 15, 18, 48, 12, 478000000, time.UTC),
		},
	}
}
