package search

import (
	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
	"github.com/kailas-cloud/docmanager/internal/domain/search/filter"
)

// Repository defines the storage contract for search operations.
type Repository interface {
	Filter(expr filter.Expression) []*domdoc.Document
}
