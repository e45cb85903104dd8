// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studio_booking"

var (
	bookingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Booking requests by outcome.",
	}, []string{"outcome"})

	settlements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settlements_total",
		Help:      "Gateway notifications by result.",
	}, []string{"result"})

	reconcileReversed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_reversed_total",
		Help:      "Usage records reversed because their reservation disappeared.",
	})

	collaboratorSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collaborator_seconds",
		Help:      "Latency of calls to external collaborators.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"collaborator", "op", "status"})
)

func BookingRequest(outcome string) {
	bookingRequests.WithLabelValues(outcome).Inc()
}

func Settlement(result string) {
	settlements.WithLabelValues(result).Inc()
}

func ReconcileReversed(n int) {
	if n > 0 {
		reconcileReversed.Add(float64(n))
	}
}

func ObserveCollaborator(collaborator, op string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	collaboratorSeconds.WithLabelValues(collaborator, op, status).Observe(time.Since(started).Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
