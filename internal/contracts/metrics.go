package contracts

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contractsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "franmatch_contracts_submitted_total",
			Help: "Total number of contracts submitted for verification",
		},
	)

	contractsReviewedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "franmatch_contracts_reviewed_total",
			Help: "Total number of contract verification decisions",
		},
		[]string{"status"},
	)

	connectionFees = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "franmatch_contracts_connection_fee_vnd",
			Help:    "Distribution of connection fees for submitted contracts",
			Buckets: []float64{800_000, 2_500_000, 3_000_000, 10_000_000, 12_750_000, 14_000_000},
		},
	)
)

func RecordContractSubmitted() {
	contractsSubmittedTotal.Inc()
}

func RecordContractReviewed(status string) {
	contractsReviewedTotal.WithLabelValues(status).Inc()
}

func ObserveConnectionFee(fee int64) {
	connectionFees.Observe(float64(fee))
}
