package docmanager

import (
	"time"

	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
	"github.com/kailas-cloud/docmanager/internal/domain/search/request"
)

// Document is a stored document. See NewDocument.
type Document = domdoc.Document

// Author is a document author.
type Author = domdoc.Author

// SearchRequest is a multi-criteria search. The zero value matches everything.
type SearchRequest = request.Request

// NewDocument creates a Document without an ID.
func NewDocument(title, content string, author *Author, created time.Time) *Document {
	return domdoc.New(title, content, author, created)
}

// NewAuthor creates an Author without an ID.
func NewAuthor(name string) *Author {
	return domdoc.NewAuthor(name)
}

// NewSearch starts an unconstrained SearchRequest.
func NewSearch() SearchRequest {
	return request.New()
}
