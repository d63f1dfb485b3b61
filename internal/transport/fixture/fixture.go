// Package fixture decodes YAML files describing documents to seed and
// named search requests to run against them.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	domdoc "github.com/kailas-cloud/docmanager/internal/domain/document"
	"github.com/kailas-cloud/docmanager/internal/domain/search/request"
)

// Query is a named search request.
type Query struct {
	Name    string
	Request request.Request
}

// Fixture is a decoded fixture file.
type Fixture struct {
	Documents []*domdoc.Document
	Queries   []Query
}

// Query returns the query with the given name.
func (f Fixture) Query(name string) (Query, bool) {
	for _, q := range f.Queries {
		if q.Name == name {
			return q, true
		}
	}
	return Query{}, false
}

// LoadFile reads and decodes a fixture file.
func LoadFile(path string) (Fixture, error) {
	fh, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Fixture{}, fmt.Errorf("open fixture %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()

	f, err := Decode(fh)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	return f, nil
}

// Decode parses a fixture from r. Unknown keys are rejected.
// Documents are not validated here; missing fields surface on save.
func Decode(r io.Reader) (Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw fileDTO
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, fmt.Errorf("decode yaml: %w", err)
	}

	out := Fixture{
		Documents: make([]*domdoc.Document, 0, len(raw.Documents)),
		Queries:   make([]Query, 0, len(raw.Queries)),
	}
	for i, d := range raw.Documents {
		doc, err := d.toDomain()
		if err != nil {
			return Fixture{}, fmt.Errorf("documents[%d]: %w", i, err)
		}
		out.Documents = append(out.Documents, doc)
	}

	seen := make(map[string]bool, len(raw.Queries))
	for i, q := range raw.Queries {
		if q.Name == "" {
			return Fixture{}, fmt.Errorf("queries[%d]: name is required", i)
		}
		if seen[q.Name] {
			return Fixture{}, fmt.Errorf("queries[%d]: duplicate name %q", i, q.Name)
		}
		seen[q.Name] = true

		req, err := q.toDomain()
		if err != nil {
			return Fixture{}, fmt.Errorf("queries[%d] %q: %w", i, q.Name, err)
		}
		out.Queries = append(out.Queries, Query{Name: q.Name, Request: req})
	}
	return out, nil
}

func (d documentDTO) toDomain() (*domdoc.Document, error) {
	created, err := parseTime(d.Created)
	if err != nil {
		return nil, fmt.Errorf("created: %w", err)
	}
	doc := &domdoc.Document{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
	}
	if created != nil {
		doc.Created = *created
	}
	if d.Author != nil {
		doc.Author = &domdoc.Author{ID: d.Author.ID, Name: d.Author.Name}
	}
	return doc, nil
}

func (q queryDTO) toDomain() (request.Request, error) {
	from, err := parseTime(q.CreatedFrom)
	if err != nil {
		return request.Request{}, fmt.Errorf("created_from: %w", err)
	}
	to, err := parseTime(q.CreatedTo)
	if err != nil {
		return request.Request{}, fmt.Errorf("created_to: %w", err)
	}
	return request.Request{
		TitlePrefixes:    q.TitlePrefixes,
		ContainsContents: q.ContainsContents,
		AuthorIDs:        q.AuthorIDs,
		CreatedFrom:      from,
		CreatedTo:        to,
	}, nil
}

// parseTime accepts RFC 3339 or a bare date (midnight UTC). Empty means absent.
func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absent timestamp
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp %q (want RFC 3339 or YYYY-MM-DD)", s)
}
