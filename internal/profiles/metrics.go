// internal/profiles/metrics.go

package profiles

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var profilesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "franmatch_profiles_created_total",
		Help: "Total number of profiles created, by user type.",
	},
	[]string{"user_type"},
)
