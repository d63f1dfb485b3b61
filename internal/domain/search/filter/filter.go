package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/kailas-cloud/docmanager/internal/domain/document"
	"github.com/kailas-cloud/docmanager/internal/domain/search/request"
)

// Clause names.
const (
	ClauseTitlePrefix     = "title_prefix"
	ClauseContentContains = "content_contains"
	ClauseAuthorIn        = "author_in"
	ClauseCreatedFrom     = "created_from"
	ClauseCreatedBefore   = "created_before"
)

// Clause is a single predicate over a document.
type Clause struct {
	name  string
	match func(*document.Document) bool
}

// Name returns the clause kind.
func (c Clause) Name() string { return c.name }

// Match reports whether doc satisfies the clause.
func (c Clause) Match(doc *document.Document) bool { return c.match(doc) }

// TitlePrefix matches titles starting with any of prefixes (case-sensitive).
// An empty list matches nothing.
func TitlePrefix(prefixes []string) Clause {
	return Clause{name: ClauseTitlePrefix, match: func(d *document.Document) bool {
		return slices.ContainsFunc(prefixes, func(p string) bool {
			return strings.HasPrefix(d.Title, p)
		})
	}}
}

// ContentContains matches content containing any of substrings (case-sensitive).
// An empty list matches nothing.
func ContentContains(substrings []string) Clause {
	return Clause{name: ClauseContentContains, match: func(d *document.Document) bool {
		return slices.ContainsFunc(substrings, func(s string) bool {
			return strings.Contains(d.Content, s)
		})
	}}
}

// AuthorIn matches documents whose author ID is one of ids.
// An empty list matches nothing.
func AuthorIn(ids []string) Clause {
	return Clause{name: ClauseAuthorIn, match: func(d *document.Document) bool {
		return slices.Contains(ids, d.AuthorID())
	}}
}

// CreatedFrom matches documents created at or after t.
func CreatedFrom(t time.Time) Clause {
	return Clause{name: ClauseCreatedFrom, match: func(d *document.Document) bool {
		return !d.Created.Before(t)
	}}
}

// CreatedBefore matches documents created strictly before t.
func CreatedBefore(t time.Time) Clause {
	return Clause{name: ClauseCreatedBefore, match: func(d *document.Document) bool {
		return d.Created.Before(t)
	}}
}

// Expression is a conjunction of clauses. The zero value matches everything.
type Expression struct {
	must []Clause
}

// NewExpression creates an Expression requiring every clause.
func NewExpression(must ...Clause) Expression {
	return Expression{must: must}
}

// Compile turns a search request into an Expression.
// Absent request fields produce no clause; present ones always do,
// so an empty list rejects every document.
func Compile(req request.Request) Expression {
	if req.IsEmpty() {
		return Expression{}
	}
	var must []Clause
	if req.TitlePrefixes != nil {
		must = append(must, TitlePrefix(req.TitlePrefixes))
	}
	if req.ContainsContents != nil {
		must = append(must, ContentContains(req.ContainsContents))
	}
	if req.AuthorIDs != nil {
		must = append(must, AuthorIn(req.AuthorIDs))
	}
	if req.CreatedFrom != nil {
		must = append(must, CreatedFrom(*req.CreatedFrom))
	}
	if req.CreatedTo != nil {
		must = append(must, CreatedBefore(*req.CreatedTo))
	}
	return Expression{must: must}
}

// Must returns the required clauses.
func (e Expression) Must() []Clause { return e.must }

// IsEmpty reports whether the expression has no clauses.
func (e Expression) IsEmpty() bool { return len(e.must) == 0 }

// Matches reports whether doc satisfies every clause.
func (e Expression) Matches(doc *document.Document) bool {
	for _, c := range e.must {
		if !c.Match(doc) {
			return false
		}
	}
	return true
}

// Matches reports whether doc satisfies req.
func Matches(doc *document.Document, req request.Request) bool {
	return Compile(req).Matches(doc)
}
