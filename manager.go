package docmanager

import (
	"time"

	"github.com/kailas-cloud/docmanager/internal/db"
	"github.com/kailas-cloud/docmanager/internal/db/memory"
	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
	documentrepo "github.com/kailas-cloud/docmanager/internal/repository/document"
	searchrepo "github.com/kailas-cloud/docmanager/internal/repository/search"
	documentuc "github.com/kailas-cloud/docmanager/internal/usecase/document"
	searchuc "github.com/kailas-cloud/docmanager/internal/usecase/search"
)

// Internal interfaces for substitution in tests.
type documentUseCase interface {
	Save(doc *domdoc.Document) (*domdoc.Document, bool, error)
	Get(id string) (*domdoc.Document, bool)
	Count() int
}

type searchUseCase interface {
	Search(req SearchRequest) []*domdoc.Document
}

// Manager is the document store entry point. Safe for concurrent use.
type Manager struct {
	docSvc    documentUseCase
	searchSvc searchUseCase
	obs       *observer
}

// New creates an empty Manager.
// It fails only when metrics cannot be registered.
func New(opts ...Option) (*Manager, error) {
	cfg := &managerConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	gen := documentuc.NewUUID
	if cfg.newID != nil {
		gen = cfg.newID
	}

	var store db.Store[*domdoc.Document] = memory.NewOrderedMap[*domdoc.Document]()
	docSvc := documentuc.New(documentrepo.New(store), documentuc.PrefixedIDs(cfg.idPrefix, gen)).
		WithLogger(obs.logger)
	searchSvc := searchuc.New(searchrepo.New(store)).
		WithLogger(obs.logger)

	return &Manager{docSvc: docSvc, searchSvc: searchSvc, obs: obs}, nil
}

// Save upserts doc and returns it with ID and Author.ID populated.
//
// Author, Title, Content and Created must be set, otherwise a
// *MissingFieldError naming the first missing field is returned.
// Missing IDs are generated; existing IDs are never changed. A document
// with an ID already in the store replaces the stored one entirely,
// Created included, and keeps its position in search results.
//
// The store keeps doc itself; do not mutate it after saving.
func (m *Manager) Save(doc *Document) (*Document, error) {
	start := time.Now()
	saved, created, err := m.docSvc.Save(doc)
	m.obs.observe(opSave, start, err)
	if err != nil {
		return nil, err
	}
	m.obs.saved(created)
	m.obs.documents(m.docSvc.Count())
	return saved, nil
}

// FindByID returns the document stored under id.
func (m *Manager) FindByID(id string) (*Document, bool) {
	start := time.Now()
	doc, ok := m.docSvc.Get(id)
	m.obs.observe(opFindByID, start, nil)
	return doc, ok
}

// Search returns every document matching req in insertion order.
// The result is never nil.
func (m *Manager) Search(req SearchRequest) []*Document {
	start := time.Now()
	docs := m.searchSvc.Search(req)
	m.obs.observe(opSearch, start, nil)
	m.obs.searchResults(len(docs))
	return docs
}

// Count returns the number of stored documents.
func (m *Manager) Count() int {
	return m.docSvc.Count()
}
