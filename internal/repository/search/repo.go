package search

import (
	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
	"github.com/kailas-cloud/docmanager/internal/domain/search/filter"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	Values() []*domdoc.Document
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store store
}

// New creates a search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Filter returns the documents matching expr, in store order.
// A full scan over a snapshot: concurrent writes are either seen or not.
func (r *Repo) Filter(expr filter.Expression) []*domdoc.Document {
	docs := r.store.Values()
	if expr.IsEmpty() {
		return docs
	}
	out := make([]*domdoc.Document, 0, len(docs))
	for _, d := range docs {
		if expr.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}
