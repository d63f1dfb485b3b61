package request

import "time"

// Request is a multi-criteria document search.
//
// Every field is optional. A nil slice or nil time leaves its dimension
// unconstrained. A non-nil empty slice is a present constraint that no
// document can satisfy. Lists are OR-ed within a field, fields are AND-ed.
type Request struct {
	TitlePrefixes    []string
	ContainsContents []string
	AuthorIDs        []string
	CreatedFrom      *time.Time // inclusive
	CreatedTo        *time.Time // exclusive
}

// New returns an empty Request matching every document.
func New() Request {
	return Request{}
}

// WithTitlePrefixes constrains titles to start with one of prefixes.
// Calling it with no arguments sets an empty, non-nil list.
func (r Request) WithTitlePrefixes(prefixes ...string) Request {
	r.TitlePrefixes = cloneList(prefixes)
	return r
}

// WithContainsContents constrains content to contain one of substrings.
func (r Request) WithContainsContents(substrings ...string) Request {
	r.ContainsContents = cloneList(substrings)
	return r
}

// WithAuthorIDs constrains the author to one of ids.
func (r Request) WithAuthorIDs(ids ...string) Request {
	r.AuthorIDs = cloneList(ids)
	return r
}

// WithCreatedFrom sets the inclusive lower bound on Created.
func (r Request) WithCreatedFrom(t time.Time) Request {
	r.CreatedFrom = &t
	return r
}

// WithCreatedTo sets the exclusive upper bound on Created.
func (r Request) WithCreatedTo(t time.Time) Request {
	r.CreatedTo = &t
	return r
}

// IsEmpty reports whether the request has no constraints.
func (r Request) IsEmpty() bool {
	return r.TitlePrefixes == nil && r.ContainsContents == nil && r.AuthorIDs == nil &&
		r.CreatedFrom == nil && r.CreatedTo == nil
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
