package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "paypal_checkout",
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "PayPal API request latency in seconds",
			Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"request", "status_code"},
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paypal_checkout",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of PayPal API requests",
		},
		[]string{"request", "status_code"},
	)

	WebhooksReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "paypal_checkout",
			Subsystem: "webhook",
			Name:      "received_total",
			Help:      "Total number of provider webhook notifications received",
		},
	)
)

func init() {
	Registry.MustRegister(ProviderRequestDuration, ProviderRequestsTotal, WebhooksReceivedTotal)
}
