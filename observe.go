package docmanager

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docmanager/internal/metrics"
)

// Operation names used in logs and metric labels.
const (
	opSave     = "save"
	opFindByID = "find_by_id"
	opSearch   = "search"
)

// observer provides logging and metrics for store operations.
type observer struct {
	logger  *zap.Logger
	metrics *metrics.Store
}

func newObserver(logger *zap.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *metrics.Store
	if reg != nil {
		var err error
		m, err = metrics.NewStore(reg)
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(op string, start time.Time, err error) {
	dur := time.Since(start)

	if o.metrics != nil {
		status := metrics.StatusOK
		if err != nil {
			status = metrics.StatusError
		}
		o.metrics.Operations.WithLabelValues(op, status).Inc()
		o.metrics.Duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if err != nil {
		o.logger.Warn("operation failed",
			zap.String("op", op),
			zap.Duration("duration", dur),
			zap.Error(err),
		)
		return
	}
	o.logger.Debug("operation completed",
		zap.String("op", op),
		zap.Duration("duration", dur),
	)
}

func (o *observer) saved(created bool) {
	if o.metrics == nil {
		return
	}
	result := metrics.SaveReplaced
	if created {
		result = metrics.SaveCreated
	}
	o.metrics.Saves.WithLabelValues(result).Inc()
}

func (o *observer) documents(n int) {
	if o.metrics != nil {
		o.metrics.Documents.Set(float64(n))
	}
}

func (o *observer) searchResults(n int) {
	if o.metrics != nil {
		o.metrics.SearchResults.Observe(float64(n))
	}
}
