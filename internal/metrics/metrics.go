// Package metrics holds the Prometheus collectors of the relay. They are
// registered with the default registry and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Relay outcomes used as the "result" label of RelayAttempts.
const (
	ResultForwarded        = "forwarded"
	ResultSkipped          = "skipped"
	ResultLoginFailed      = "login_failed"
	ResultSubmissionFailed = "submission_failed"
	ResultError            = "error"
)

// Package kinds used as the "kind" label.
const (
	KindEncrypted = "encrypted"
	KindPlain     = "plain"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cnlrelay_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cnlrelay_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	PackagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cnlrelay_packages_received_total",
			Help: "Total ClickNLoad packages received",
		},
		[]string{"kind"}, // "encrypted" or "plain"
	)

	LinksReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cnlrelay_links_received_total",
			Help: "Total links received in ClickNLoad packages",
		},
	)

	DecryptFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cnlrelay_decrypt_failures_total",
			Help: "Total encrypted packages that could not be decrypted",
		},
	)

	// Destination metrics
	RelayAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cnlrelay_relay_attempts_total",
			Help: "Total attempts to relay a package to the destination",
		},
		[]string{"result"},
	)

	RelayDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cnlrelay_relay_duration_seconds",
			Help:    "Duration of login plus package submission",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)
