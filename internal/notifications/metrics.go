// internal/notifications/metrics.go

package notifications

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "franmatch_notifications_created_total",
		Help: "Total number of notifications created, by type.",
	},
	[]string{"type"},
)
