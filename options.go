package docmanager

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Manager.
type Option interface {
	apply(*managerConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*managerConfig)

func (f optionFunc) apply(c *managerConfig) { f(c) }

type managerConfig struct {
	newID    func() string
	idPrefix string

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithIDGenerator replaces the default UUIDv4 generator used for missing
// document and author IDs. gen must return a new unique value on every call.
func WithIDGenerator(gen func() string) Option {
	return optionFunc(func(c *managerConfig) {
		c.newID = gen
	})
}

// WithIDPrefix prepends prefix to every generated ID.
func WithIDPrefix(prefix string) Option {
	return optionFunc(func(c *managerConfig) {
		c.idPrefix = prefix
	})
}

// WithLogger enables structured logging for store operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *managerConfig) {
		c.logger = l
	})
}

// WithPrometheus registers store metrics (operation counts, durations,
// document count, search result sizes) on the given registerer.
// Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *managerConfig) {
		c.metricsReg = reg
	})
}
