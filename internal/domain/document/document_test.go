package document

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/docmanager/internal/domain"
)

var created = time.Date(2024, 10, 9, 0, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	author := NewAuthor("Dima")
	doc := New("Effective Java", "Lorem ipsum 1", author, created)

	if doc.ID != "" {
		t.Errorf("ID = %q, want empty", doc.ID)
	}
	if doc.Title != "Effective Java" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.Author != author {
		t.Error("Author pointer not kept")
	}
	if author.ID != "" {
		t.Errorf("Author.ID = %q, want empty", author.ID)
	}
	if !doc.Created.Equal(created) {
		t.Errorf("Created = %v", doc.Created)
	}
}

func TestWithID(t *testing.T) {
	doc := New("t", "c", NewAuthor("a"), created).WithID("doc-1")
	if doc.ID != "doc-1" {
		t.Errorf("ID = %q, want doc-1", doc.ID)
	}
}

func TestValidate_Valid(t *testing.T) {
	doc := New("t", "c", NewAuthor("a"), created)
	if err := doc.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   *Document
		field string
	}{
		{"no author", &Document{Title: "t", Content: "c", Created: created}, FieldAuthor},
		{"no title", &Document{Content: "c", Author: NewAuthor("a"), Created: created}, FieldTitle},
		{"no content", &Document{Title: "t", Author: NewAuthor("a"), Created: created}, FieldContent},
		{"no created", &Document{Title: "t", Content: "c", Author: NewAuthor("a")}, FieldCreated},
		{"empty document reports author first", &Document{}, FieldAuthor},
		{"author set, rest empty reports title", &Document{Author: NewAuthor("a")}, FieldTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if !errors.Is(err, domain.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			var mfe *domain.MissingFieldError
			if !errors.As(err, &mfe) {
				t.Fatalf("expected *MissingFieldError, got %T", err)
			}
			if mfe.Field != tt.field {
				t.Errorf("Field = %q, want %q", mfe.Field, tt.field)
			}
		})
	}
}

func TestAuthorID(t *testing.T) {
	doc := &Document{}
	if got := doc.AuthorID(); got != "" {
		t.Errorf("AuthorID() = %q, want empty for nil author", got)
	}
	doc.Author = &Author{ID: "a-1", Name: "Dima"}
	if got := doc.AuthorID(); got != "a-1" {
		t.Errorf("AuthorID() = %q, want a-1", got)
	}
}
