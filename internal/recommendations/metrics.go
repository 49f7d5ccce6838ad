// internal/recommendations/metrics.go

package recommendations

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var interactionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "franmatch_recommendation_interactions_total",
		Help: "Total number of recommendation interactions, by action.",
	},
	[]string{"action"},
)
