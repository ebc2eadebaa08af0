package fuzzy

import "github.com/jhbabon/scout/internal/text"

// Query is a Text wrapped with a set of its lowercased graphemes, for fast
// "does the subject contain any query grapheme at all" filtering. It is
// constructed fresh whenever the prompt changes.
type Query struct {
	*text.Text
	set map[string]struct{}
}

// NewQuery builds a Query from raw text.
func NewQuery(raw string) *Query {
	return FromText(text.Build(raw))
}

// FromText wraps an already-built Text as a Query, reusing its grapheme
// segmentation instead of recomputing it.
func FromText(t *text.Text) *Query {
	set := make(map[string]struct{}, t.Len())
	for _, g := range t.LowercaseGraphemes() {
		set[g] = struct{}{}
	}

	return &Query{Text: t, set: set}
}

// Contains reports whether grapheme g (already lowercased by the caller)
// appears anywhere in the query.
func (q *Query) Contains(g string) bool {
	_, ok := q.set[g]
	return ok
}
