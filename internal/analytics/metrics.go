// internal/analytics/metrics.go

package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "franmatch_analytics_events_total",
		Help: "Total number of custom analytics events recorded, by event type.",
	},
	[]string{"event_type"},
)
