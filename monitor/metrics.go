package monitor

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "chain"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Height of the chain as reported by getblockcount.
	Height metrics.Gauge

	// Number of peers the daemon is connected to.
	Connections metrics.Gauge

	// Number of polls that failed.
	PollFailures metrics.Counter
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
		Height: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "height",
			Help:      "Height of the chain as reported by getblockcount.",
		}, labels).With(labelsAndValues...),
		Connections: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "connections",
			Help:      "Number of peers the daemon is connected to.",
		}, labels).With(labelsAndValues...),
		PollFailures: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "poll_failures_total",
			Help:      "Number of polls that failed.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Height:       discard.NewGauge(),
		Connections:  discard.NewGauge(),
		PollFailures: discard.NewCounter(),
	}
}
