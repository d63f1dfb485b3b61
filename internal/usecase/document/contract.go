package document

import (
	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Upsert(doc *domdoc.Document) (created bool)
	Get(id string) (*domdoc.Document, bool)
	Count() int
}

// IDGenerator returns a new globally unique identifier on every call.
type IDGenerator func() string
