package filter

import (
	"testing"
	"time"

	"github.com/kailas-cloud/docmanager/internal/domain/document"
	"github.com/kailas-cloud/docmanager/internal/domain/search/request"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func makeDoc(title, content, authorID string, created time.Time) *document.Document {
	return &document.Document{
		ID:      "doc-" + title,
		Title:   title,
		Content: content,
		Author:  &document.Author{ID: authorID, Name: "name-" + authorID},
		Created: created,
	}
}

// --- Clause tests ---

func TestTitlePrefix(t *testing.T) {
	doc := makeDoc("Clean code", "Lorem ipsum", "a1", day("2024-11-10"))

	tests := []struct {
		name     string
		prefixes []string
		want     bool
	}{
		{"single match", []string{"Clean"}, true},
		{"any of several", []string{"Eff", "Clean c"}, true},
		{"full title", []string{"Clean code"}, true},
		{"empty prefix string", []string{""}, true},
		{"case sensitive", []string{"clean"}, false},
		{"not a prefix", []string{"code"}, false},
		{"longer than title", []string{"Clean code!"}, false},
		{"empty list", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := TitlePrefix(tt.prefixes)
			if c.Name() != ClauseTitlePrefix {
				t.Errorf("Name() = %q", c.Name())
			}
			if got := c.Match(doc); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentContains(t *testing.T) {
	doc := makeDoc("Effective Java", "Lorem ipsum 1", "a1", day("2024-10-09"))

	tests := []struct {
		name string
		subs []string
		want bool
	}{
		{"middle", []string{"ipsum"}, true},
		{"any of several", []string{"dolor", "Lorem"}, true},
		{"case sensitive", []string{"IPSUM"}, false},
		{"absent", []string{"dolor"}, false},
		{"empty list", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentContains(tt.subs).Match(doc); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorIn(t *testing.T) {
	doc := makeDoc("t", "c", "a1", day("2024-10-09"))

	if !AuthorIn([]string{"a3", "a1"}).Match(doc) {
		t.Error("expected match for listed author")
	}
	if AuthorIn([]string{"a2"}).Match(doc) {
		t.Error("expected no match for unlisted author")
	}
	if AuthorIn([]string{"A1"}).Match(doc) {
		t.Error("author ids compare exactly")
	}
	if AuthorIn([]string{}).Match(doc) {
		t.Error("expected no match for empty list")
	}
}

func TestCreatedBounds(t *testing.T) {
	doc := makeDoc("t", "c", "a1", day("2024-11-10"))

	tests := []struct {
		name   string
		clause Clause
		want   bool
	}{
		{"from before", CreatedFrom(day("2024-11-09")), true},
		{"from equal is inclusive", CreatedFrom(day("2024-11-10")), true},
		{"from after", CreatedFrom(day("2024-11-11")), false},
		{"before after", CreatedBefore(day("2024-11-11")), true},
		{"before equal is exclusive", CreatedBefore(day("2024-11-10")), false},
		{"before earlier", CreatedBefore(day("2024-11-09")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clause.Match(doc); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Compile tests ---

func TestCompile_EmptyRequest(t *testing.T) {
	expr := Compile(request.New())
	if !expr.IsEmpty() {
		t.Fatalf("expected no clauses, got %d", len(expr.Must()))
	}
	if !expr.Matches(makeDoc("t", "c", "a1", day("2024-10-09"))) {
		t.Error("empty expression should match everything")
	}
}

func TestCompile_ClauseOrder(t *testing.T) {
	req := request.New().
		WithCreatedTo(day("2025-01-01")).
		WithAuthorIDs("a1").
		WithTitlePrefixes("C").
		WithCreatedFrom(day("2024-01-01")).
		WithContainsContents("x")

	got := Compile(req).Must()
	want := []string{
		ClauseTitlePrefix, ClauseContentContains, ClauseAuthorIn,
		ClauseCreatedFrom, ClauseCreatedBefore,
	}
	if len(got) != len(want) {
		t.Fatalf("len(Must()) = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Name() != want[i] {
			t.Errorf("clause[%d] = %q, want %q", i, c.Name(), want[i])
		}
	}
}

func TestCompile_EmptyListIsAClause(t *testing.T) {
	expr := Compile(request.New().WithTitlePrefixes())
	if expr.IsEmpty() {
		t.Fatal("present empty list must compile to a clause")
	}
	if expr.Matches(makeDoc("Clean code", "c", "a1", day("2024-10-09"))) {
		t.Error("present empty list must reject every document")
	}
}

// --- Matches tests ---

func TestMatches_AbsentVersusEmpty(t *testing.T) {
	doc := makeDoc("Clean code", "Lorem ipsum 2", "a2", day("2024-11-10"))

	tests := []struct {
		name string
		req  request.Request
		want bool
	}{
		{"absent titles", request.Request{}, true},
		{"empty titles", request.Request{TitlePrefixes: []string{}}, false},
		{"absent contents", request.Request{}, true},
		{"empty contents", request.Request{ContainsContents: []string{}}, false},
		{"absent authors", request.Request{}, true},
		{"empty authors", request.Request{AuthorIDs: []string{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(doc, tt.req); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatches_ConjunctionAcrossFields(t *testing.T) {
	doc := makeDoc("Clean code", "Lorem ipsum 2", "a2", day("2024-11-10"))

	tests := []struct {
		name string
		req  request.Request
		want bool
	}{
		{
			"all satisfied",
			request.New().
				WithTitlePrefixes("Clean").
				WithContainsContents("ipsum").
				WithAuthorIDs("a2").
				WithCreatedFrom(day("2024-11-09")).
				WithCreatedTo(day("2024-11-28")),
			true,
		},
		{
			"one field fails",
			request.New().WithTitlePrefixes("Clean").WithAuthorIDs("a1"),
			false,
		},
		{
			"window excludes",
			request.New().WithCreatedFrom(day("2024-11-11")).WithCreatedTo(day("2024-11-28")),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(doc, tt.req); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewExpression_Composes(t *testing.T) {
	expr := NewExpression(TitlePrefix([]string{"Clean"}), CreatedBefore(day("2024-11-20")))

	if !expr.Matches(makeDoc("Clean code", "c", "a", day("2024-11-10"))) {
		t.Error("expected match")
	}
	if expr.Matches(makeDoc("Clean coder", "c", "a", day("2024-11-26"))) {
		t.Error("expected no match after upper bound")
	}
}
