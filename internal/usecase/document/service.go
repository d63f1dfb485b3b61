package document

import (
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docmanager/internal/domain"
	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
)

// Service handles document upsert and lookup with ID assignment.
type Service struct {
	repo   Repository
	newID  IDGenerator
	logger *zap.Logger

	// mu serializes ID assignment and upsert: documents saved
	// concurrently may share one *Author.
	mu sync.Mutex
}

// New creates a document service. A nil newID falls back to NewUUID.
func New(repo Repository, newID IDGenerator) *Service {
	if newID == nil {
		newID = NewUUID
	}
	return &Service{repo: repo, newID: newID, logger: zap.NewNop()}
}

// WithLogger sets the service logger.
func (s *Service) WithLogger(l *zap.Logger) *Service {
	if l != nil {
		s.logger = l
	}
	return s
}

// Save validates doc, assigns missing document and author IDs, and upserts it.
// The same pointer is stored and returned. Created is stored as given, even
// when it differs from the replaced document.
// Returns true if the document was created, false if an existing one was replaced.
func (s *Service) Save(doc *domdoc.Document) (*domdoc.Document, bool, error) {
	if doc == nil {
		return nil, false, domain.NewMissingField("document")
	}
	if err := doc.Validate(); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		doc.ID = s.newID()
	}
	if doc.Author.ID == "" {
		doc.Author.ID = s.newID()
	}

	created := s.repo.Upsert(doc)
	s.logger.Debug("document saved",
		zap.String("id", doc.ID),
		zap.String("author_id", doc.Author.ID),
		zap.Bool("created", created),
	)
	return doc, created, nil
}

// Get returns the document stored under id.
func (s *Service) Get(id string) (*domdoc.Document, bool) {
	return s.repo.Get(id)
}

// Count returns the number of stored documents.
func (s *Service) Count() int {
	return s.repo.Count()
}
