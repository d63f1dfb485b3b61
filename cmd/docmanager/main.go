// docmanager seeds an in-memory document store from a YAML fixture and
// runs the fixture's named search queries against it, printing one JSON
// object per query to stdout.
//
// Usage:
//
//	docmanager [-fixtures config/fixtures.yaml] [-query clean-titles]
//
// Env vars:
//
//	ENV                   config environment: local (default), dev, prod
//	DOCMANAGER_LOG_LEVEL  log level override
//	DOCMANAGER_FIXTURES   fixture path (when not passed via -fixtures)
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docmanager"
	"github.com/kailas-cloud/docmanager/internal/config"
	logpkg "github.com/kailas-cloud/docmanager/internal/logger"
	"github.com/kailas-cloud/docmanager/internal/transport/fixture"
	"github.com/kailas-cloud/docmanager/internal/version"
)

type flags struct {
	fixtures string
	query    string
}

func parseFlags() flags {
	f := flags{}
	flag.StringVar(&f.fixtures, "fixtures", "", "fixture file (overrides fixtures.path from config)")
	flag.StringVar(&f.query, "query", "", "run only the named query")
	flag.Parse()
	return f
}

func main() {
	fl := parseFlags()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting docmanager",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("built", version.Date),
		zap.String("env", env),
	)

	if fl.fixtures != "" {
		cfg.Fixtures.Path = fl.fixtures
	}

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := run(ctx, cfg, fl.query, os.Stdout); err != nil {
		logger.Error("Run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// queryResult is the JSON line written for each query.
type queryResult struct {
	Query     string         `json:"query"`
	Count     int            `json:"count"`
	Documents []documentView `json:"documents"`
}

type documentView struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  authorView `json:"author"`
	Created time.Time  `json:"created"`
}

type authorView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func run(ctx context.Context, cfg config.Config, only string, out io.Writer) error {
	logger := logpkg.FromContext(ctx)

	fx, err := fixture.LoadFile(cfg.Fixtures.Path)
	if err != nil {
		return err
	}

	queries := fx.Queries
	if only != "" {
		q, ok := fx.Query(only)
		if !ok {
			return fmt.Errorf("query %q not found in %s", only, cfg.Fixtures.Path)
		}
		queries = []fixture.Query{q}
	}

	opts := []docmanager.Option{
		docmanager.WithLogger(logger),
		docmanager.WithIDPrefix(cfg.Store.IDPrefix),
	}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		opts = append(opts, docmanager.WithPrometheus(reg))
	}

	m, err := docmanager.New(opts...)
	if err != nil {
		return fmt.Errorf("create manager: %w", err)
	}

	for i, doc := range fx.Documents {
		if _, err := m.Save(doc); err != nil {
			return fmt.Errorf("seed documents[%d]: %w", i, err)
		}
	}
	logger.Info("Store seeded",
		zap.String("fixtures", cfg.Fixtures.Path),
		zap.Int("documents", m.Count()),
	)

	enc := json.NewEncoder(out)
	for _, q := range queries {
		qctx := logpkg.With(ctx, zap.String("query", q.Name))
		docs := m.Search(q.Request)
		if err := enc.Encode(toResult(q.Name, docs)); err != nil {
			return fmt.Errorf("write result %q: %w", q.Name, err)
		}
		logpkg.FromContext(qctx).Debug("Query done", zap.Int("results", len(docs)))
	}

	if reg != nil {
		logMetrics(logger, reg)
	}
	return nil
}

func toResult(name string, docs []*docmanager.Document) queryResult {
	views := make([]documentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, documentView{
			ID:      d.ID,
			Title:   d.Title,
			Content: d.Content,
			Author:  authorView{ID: d.Author.ID, Name: d.Author.Name},
			Created: d.Created,
		})
	}
	return queryResult{Query: name, Count: len(views), Documents: views}
}

// logMetrics writes a summary of the store counters gathered from reg.
func logMetrics(logger *zap.Logger, reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("Gather metrics failed", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			fields := []zap.Field{zap.String("metric", mf.GetName())}
			for _, lp := range metric.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case metric.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", metric.GetCounter().GetValue()))
			case metric.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", metric.GetGauge().GetValue()))
			case metric.GetHistogram() != nil:
				fields = append(fields, zap.Uint64("count", metric.GetHistogram().GetSampleCount()))
			}
			logger.Info("Metric", fields...)
		}
	}
}
