package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_orders_submitted_total",
			Help: "Orders accepted by the backend, by payment method and replay.",
		},
		[]string{"payment_method", "replayed"},
	)

	checkoutRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_rejected_total",
			Help: "Checkout attempts rejected before or during submission, by reason.",
		},
		[]string{"reason"},
	)

	cartMergeLines = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_merge_lines_total",
			Help: "Guest cart lines merged into remote carts, by result.",
		},
		[]string{"result"},
	)
)
