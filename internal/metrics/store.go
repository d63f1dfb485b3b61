package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Save result label values.
const (
	SaveCreated  = "created"
	SaveReplaced = "replaced"
)

// Store holds Prometheus metrics for document store operations.
type Store struct {
	Operations    *prometheus.CounterVec
	Saves         *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	Documents     prometheus.Gauge
	SearchResults prometheus.Histogram
}

// NewStore creates store metrics and registers them on reg.
// Collectors already registered on reg are reused.
func NewStore(reg prometheus.Registerer) (*Store, error) {
	m := &Store{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docmanager",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total store operations by type and status.",
		}, []string{"operation", "status"}),
		Saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docmanager",
			Subsystem: "store",
			Name:      "saves_total",
			Help:      "Successful saves by result: created or replaced.",
		}, []string{"result"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "docmanager",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation duration in seconds.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"operation"}),
		Documents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "docmanager",
			Subsystem: "store",
			Name:      "documents",
			Help:      "Number of documents held by the store.",
		}),
		SearchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "docmanager",
			Subsystem: "store",
			Name:      "search_results",
			Help:      "Number of documents returned per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if err := registerOrReuse(reg, &m.Operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.Saves); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.Duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.Documents); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.SearchResults); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("register metric: %w", err)
	}
	return nil
}
