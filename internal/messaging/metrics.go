// internal/messaging/metrics.go

package messaging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "franmatch_messages_sent_total",
		Help: "Total number of chat messages sent.",
	})

	wsConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "franmatch_websocket_connections",
		Help: "Number of active websocket connections.",
	})
)
