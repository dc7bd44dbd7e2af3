// Package metrics exposes the Prometheus collectors of the server.
package metrics

import (
	"errors"

	"eventmanagement/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventmanagement"

// Registry is the Prometheus registry for all metrics of the server.
var Registry = prometheus.NewRegistry()

// Submission outcomes.
const (
	OutcomeOK                 = "ok"
	OutcomeMissingField       = "missing_field"
	OutcomeInvalidField       = "invalid_field"
	OutcomeDuplicateKey       = "duplicate_key"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

var (
	// FormSubmissionsTotal counts form submissions by form and outcome.
	FormSubmissionsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Total number of form submissions",
		},
		[]string{"form", "outcome"},
	)

	// HTTPRequestsTotal counts HTTP requests by method, route, and status code
	HTTPRequestsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration records HTTP request latency in seconds
	HTTPRequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			// 1ms .. 10s; bcrypt at cost 10 sits around 50-100ms.
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	// StoreUp is 1 when the last store ping succeeded, 0 otherwise.
	StoreUp = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_up",
			Help:      "Whether the document store answered the last ping (1) or not (0)",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Outcome classifies the result of a submission for FormSubmissionsTotal.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	case errors.Is(err, domain.ErrDuplicateKey):
		return OutcomeDuplicateKey
	case errors.Is(err, domain.ErrMissingField):
		return OutcomeMissingField
	case errors.Is(err, domain.ErrInvalidField):
		return OutcomeInvalidField
	default:
		return OutcomeError
	}
}

// RecordFormSubmission counts one submission of form with the outcome of err.
func RecordFormSubmission(form string, err error) {
	FormSubmissionsTotal.WithLabelValues(form, Outcome(err)).Inc()
}
