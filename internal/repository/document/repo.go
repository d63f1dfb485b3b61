package document

import (
	"github.com/kailas-cloud/docmanager/internal/db"
	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
)

type store = db.Store[*domdoc.Document]

// Repo implements usecase/document.Repository.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert stores doc under its ID. Returns true if created.
// The caller must set doc.ID first.
func (r *Repo) Upsert(doc *domdoc.Document) bool {
	return r.store.Put(doc.ID, doc)
}

// Get returns a document by ID.
func (r *Repo) Get(id string) (*domdoc.Document, bool) {
	return r.store.Get(id)
}

// Count returns the number of stored documents.
func (r *Repo) Count() int {
	return r.store.Len()
}
