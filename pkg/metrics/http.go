package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"method", "path", "status"})

	RegistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "user_registrations_total",
		Help: "Total successful user registrations",
	})

	GiftParticipationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gift_participations_total",
		Help: "Total successful gift participations",
	})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		RegistrationsTotal,
		GiftParticipationsTotal,
	)
}
