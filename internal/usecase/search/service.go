package search

import (
	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
	"github.com/kailas-cloud/docmanager/internal/domain/search/filter"
	"github.com/kailas-cloud/docmanager/internal/domain/search/request"
)

// Service handles multi-criteria document search.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo, logger: zap.NewNop()}
}

// WithLogger sets the service logger.
func (s *Service) WithLogger(l *zap.Logger) *Service {
	if l != nil {
		s.logger = l
	}
	return s
}

// Search returns every stored document matching req, in insertion order.
func (s *Service) Search(req request.Request) []*domdoc.Document {
	expr := filter.Compile(req)
	docs := s.repo.Filter(expr)

	if ce := s.logger.Check(zap.DebugLevel, "search executed"); ce != nil {
		names := make([]string, 0, len(expr.Must()))
		for _, c := range expr.Must() {
			names = append(names, c.Name())
		}
		ce.Write(zap.Strings("clauses", names), zap.Int("results", len(docs)))
	}
	return docs
}
