// Package text holds the immutable, grapheme-segmented strings shared
// throughout the pipeline: every subject read from stdin, and every query
// typed at the prompt, is built once and referenced by pointer from then on.
package text

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Text is an immutable string together with its precomputed grapheme
// clusters and their lowercased form. It is built once per input line (or
// per prompt change) and shared by reference: the Pool, every Candidate in
// every result set, and the Renderer's view all point at the same Text.
type Text struct {
	raw       string
	graphemes []string
	lower     []string
}

// Build segments s into Unicode grapheme clusters and precomputes their
// lowercased form. This is the only place grapheme segmentation happens;
// everything downstream works off the resulting index.
func Build(s string) *Text {
	seg := graphemes.FromString(s)

	clusters := make([]string, 0, len(s))
	for seg.Next() {
		clusters = append(clusters, seg.Value())
	}

	lower := make([]string, len(clusters))
	for i, g := range clusters {
		lower[i] = strings.ToLower(g)
	}

	return &Text{raw: s, graphemes: clusters, lower: lower}
}

// Len returns the number of graphemes in the text.
func (t *Text) Len() int {
	return len(t.graphemes)
}

// LastIndex returns the index of the last grapheme, or -1 for an empty text.
func (t *Text) LastIndex() int {
	return len(t.graphemes) - 1
}

// GraphemeAt returns the original-case grapheme at position i.
func (t *Text) GraphemeAt(i int) string {
	return t.graphemes[i]
}

// LowercaseAt returns the lowercased grapheme at position i.
func (t *Text) LowercaseAt(i int) string {
	return t.lower[i]
}

// LowercaseGraphemes returns the full lowercased grapheme slice. Callers
// must treat it as read-only.
func (t *Text) LowercaseGraphemes() []string {
	return t.lower
}

// Graphemes returns the full original-case grapheme slice. Callers must
// treat it as read-only.
func (t *Text) Graphemes() []string {
	return t.graphemes
}

// String returns the original raw string.
func (t *Text) String() string {
	return t.raw
}
