package runtime

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lucent-dev/lucent/pkg/reconcile"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "lucent").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for diff duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "lucent",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for Lucent.
type metrics struct {
	mountsTotal   prometheus.Counter
	activeMounts  prometheus.Gauge
	diffsTotal    prometheus.Counter
	diffDuration  prometheus.Histogram
	hostMutations *prometheus.CounterVec
	effectErrors  prometheus.Counter
}

// globalMetrics is the singleton metrics instance.
// Created on the first call to EnableMetrics().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		mountsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "mounts_total",
			Help:        "Total number of mounts performed",
			ConstLabels: config.ConstLabels,
		}),

		activeMounts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_mounts",
			Help:        "Number of live mounts",
			ConstLabels: config.ConstLabels,
		}),

		diffsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "diffs_total",
			Help:        "Total number of reconciliation passes",
			ConstLabels: config.ConstLabels,
		}),

		diffDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "diff_duration_seconds",
			Help:        "Reconciliation pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		hostMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "host_mutations_total",
			Help:        "Total host tree mutations by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		effectErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "effect_errors_total",
			Help:        "Total errors recovered from mount effects",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// EnableMetrics initializes the Prometheus metrics singleton.
//
// Metrics collected:
//   - lucent_mounts_total: Counter of mounts performed
//   - lucent_active_mounts: Gauge of live mounts
//   - lucent_diffs_total: Counter of reconciliation passes
//   - lucent_diff_duration_seconds: Histogram of pass duration
//   - lucent_host_mutations_total: Counter of host mutations by kind
//   - lucent_effect_errors_total: Counter of recovered effect errors
//
// Expose them with promhttp.Handler() on an HTTP mux of your choosing.
func EnableMetrics(opts ...MetricsOption) {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
}

func recordMount() {
	if globalMetrics != nil {
		globalMetrics.mountsTotal.Inc()
		globalMetrics.activeMounts.Inc()
	}
}

func recordUnmount() {
	if globalMetrics != nil {
		globalMetrics.activeMounts.Dec()
	}
}

func recordDiff(s reconcile.Stats, elapsed time.Duration) {
	if globalMetrics == nil {
		return
	}
	globalMetrics.diffsTotal.Inc()
	globalMetrics.diffDuration.Observe(elapsed.Seconds())
	globalMetrics.hostMutations.WithLabelValues("created").Add(float64(s.Created))
	globalMetrics.hostMutations.WithLabelValues("updated").Add(float64(s.Updated))
	globalMetrics.hostMutations.WithLabelValues("removed").Add(float64(s.Removed))
	globalMetrics.hostMutations.WithLabelValues("text").Add(float64(s.TextWrites))
	globalMetrics.hostMutations.WithLabelValues("attr").Add(float64(s.AttrWrites))
}

func recordEffectError() {
	if globalMetrics != nil {
		globalMetrics.effectErrors.Inc()
	}
}
