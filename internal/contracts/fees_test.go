package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionFeeBrackets(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int64
	}{
		{"zero value", 0, 800_000},
		{"small deal", 5_000_000, 800_000},
		{"just below first boundary", 49_999_999, 800_000},
		{"first boundary inclusive", 50_000_000, 2_500_000},
		{"just below 100M", 99_999_999, 2_500_000},
		{"100M boundary", 100_000_000, 3_000_000},
		{"mid bracket", 250_000_000, 3_000_000},
		{"300M boundary", 300_000_000, 10_000_000},
		{"just below 700M", 699_999_999, 10_000_000},
		{"700M boundary", 700_000_000, 12_750_000},
		{"just below 1B", 999_999_999, 12_750_000},
		{"1B boundary", 1_000_000_000, 14_000_000},
		{"far above top tier", 5_000_000_000, 14_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConnectionFee(tt.value))
		})
	}
}

func TestConnectionFeeMonotonic(t *testing.T) {
	// Fees must never decrease as the contract value grows
	prev := ConnectionFee(0)
	for v := float64(0); v <= 1_200_000_000; v += 1_000_000 {
		fee := ConnectionFee(v)
		assert.GreaterOrEqual(t, fee, prev, "fee decreased at value %.0f", v)
		prev = fee
	}
}
