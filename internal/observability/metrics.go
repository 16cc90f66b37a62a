// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Roster operation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	rosterOpsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Roster operations by kind and outcome.",
	}, []string{"operation", "outcome"})

	eventsFailedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "events",
		Name:      "publish_failed_total",
		Help:      "Roster events that could not be published.",
	})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activities_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(rosterOpsCounter, eventsFailedCounter, httpDuration)
}

// RecordRosterOperation counts one roster operation outcome.
func RecordRosterOperation(operation, outcome string) {
	rosterOpsCounter.WithLabelValues(operation, outcome).Inc()
}

// RecordEventPublishFailure counts an event that was dropped.
func RecordEventPublishFailure() {
	eventsFailedCounter.Inc()
}

// ObserveHTTPRequest records request latency.
func ObserveHTTPRequest(method, route string, status int, dur time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(dur.Seconds())
}
