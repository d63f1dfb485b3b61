package document

import (
	"time"

	"github.com/kailas-cloud/docmanager/internal/domain"
)

// Field names reported by Validate.
const (
	FieldAuthor  = "author"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldCreated = "created"
)

// Author identifies who wrote a document. An empty ID is assigned on save.
type Author struct {
	ID   string
	Name string
}

// NewAuthor creates an Author without an ID.
func NewAuthor(name string) *Author {
	return &Author{Name: name}
}

// Document is the stored aggregate.
// ID and Author.ID are optional on input and always set after a save.
// Created is caller-owned: the store never rewrites it.
type Document struct {
	ID      string
	Title   string
	Content string
	Author  *Author
	Created time.Time
}

// New creates a Document without an ID.
func New(title, content string, author *Author, created time.Time) *Document {
	return &Document{
		Title:   title,
		Content: content,
		Author:  author,
		Created: created,
	}
}

// WithID sets the document ID and returns the document for chaining.
func (d *Document) WithID(id string) *Document {
	d.ID = id
	return d
}

// Validate checks that author, title, content and created are set, in that order.
func (d *Document) Validate() error {
	switch {
	case d.Author == nil:
		return domain.NewMissingField(FieldAuthor)
	case d.Title == "":
		return domain.NewMissingField(FieldTitle)
	case d.Content == "":
		return domain.NewMissingField(FieldContent)
	case d.Created.IsZero():
		return domain.NewMissingField(FieldCreated)
	}
	return nil
}

// AuthorID returns the author's ID, or "" when the author is not set.
func (d *Document) AuthorID() string {
	if d.Author == nil {
		return ""
	}
	return d.Author.ID
}
