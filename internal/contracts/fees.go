// internal/contracts/fees.go

package contracts

const million = 1_000_000

// ConnectionFee maps a contract value (VND) to the flat fee charged when
// two matched parties connect. Brackets are half-open: inclusive on the
// lower bound, exclusive on the upper.
func ConnectionFee(contractValue float64) int64 {
	switch {
	case contractValue < 50*million:
		return 800_000
	case contractValue < 100*million:
		return 2_500_000
	case contractValue < 300*million:
		return 3_000_000
	case contractValue < 700*million:
		return 10_000_000
	case contractValue < 1000*million:
		return 12_750_000
	default:
		return 14_000_000
	}
}
