package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Form action outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeDBError   = "db_error"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	formActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courseadmin",
			Subsystem: "forms",
			Name:      "actions_total",
			Help:      "Form actions by entity, action and outcome.",
		},
		[]string{"entity", "action", "outcome"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courseadmin",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "courseadmin",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	gateDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courseadmin",
			Subsystem: "auth",
			Name:      "gate_decisions_total",
			Help:      "Authorization gate decisions by kind.",
		},
		[]string{"decision"},
	)
)

func init() {
	Registry.MustRegister(
		formActions,
		httpRequests,
		httpDuration,
		gateDecisions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordFormAction counts one form action outcome
func RecordFormAction(entity, action, outcome string) {
	formActions.WithLabelValues(entity, action, outcome).Inc()
}

// RecordRequest records a handled HTTP request. route is the matched route pattern,
// never the raw path, to keep label cardinality bounded.
func RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordGateDecision counts an authorization gate decision
func RecordGateDecision(decision string) {
	gateDecisions.WithLabelValues(decision).Inc()
}
