package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var outboxPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_outbox_events_published_total",
		Help: "Outbox events relayed to Kafka by result",
	},
	[]string{"result"},
)
