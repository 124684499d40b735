package client

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "rpc_client"
)

// Call outcomes used as the "outcome" label.
const (
	outcomeOK            = "ok"
	outcomeRPCError      = "rpc_error"
	outcomeTransport     = "transport_error"
	outcomeProtocol      = "protocol_error"
	outcomeInvalidParams = "invalid"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of calls made, labeled by method and outcome.
	RequestsTotal metrics.Counter

	// Time from sending a request to decoding its response, labeled by
	// method.
	RequestDurationSeconds metrics.Histogram
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		RequestsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "requests_total",
			Help:      "Number of calls made, labeled by method and outcome.",
		}, withLabels(labels, "method", "outcome")).With(labelsAndValues...),
		RequestDurationSeconds: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Time from sending a request to decoding its response, labeled by method.",
			Buckets:   stdprometheus.ExponentialBuckets(0.001, 4, 8),
		}, withLabels(labels, "method")).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		RequestsTotal:          discard.NewCounter(),
		RequestDurationSeconds: discard.NewHistogram(),
	}
}

func withLabels(labels []string, extra ...string) []string {
	out := make([]string, 0, len(labels)+len(extra))
	out = append(out, labels...)
	return append(out, extra...)
}
