package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	swipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "franmatch_swipes_total",
			Help: "Total number of swipe actions recorded",
		},
		[]string{"direction"},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "franmatch_matches_total",
			Help: "Total number of matches created",
		},
	)
)

func RecordSwipe(direction string) {
	swipesTotal.WithLabelValues(direction).Inc()
}

func RecordMatchCreated() {
	matchesTotal.Inc()
}
