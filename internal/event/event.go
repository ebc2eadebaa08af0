// Package event defines the single tagged-union message type the four
// pipeline tasks (Ingester, KeyReader, Engine, Renderer) exchange over
// channels.
package event

import "github.com/jhbabon/scout/internal/text"

// Kind discriminates the payload carried by an Event.
type Kind int

const (
	// NewLine carries one line read from stdin.
	NewLine Kind = iota
	// EOF signals the Ingester has no more lines to send.
	EOF
	// Search carries the current query text and the logical timestamp it
	// was captured at, destined for the Engine (which re-scores) and the
	// Renderer (which updates the displayed query immediately).
	Search
	// FlushSearch asks the Engine to re-score the existing pool against the
	// last query it saw, without waiting for a prompt edit. The Renderer
	// accepts a FlushSearch result unconditionally, since it carries no
	// staleness risk: it never originates from a race with a newer edit.
	FlushSearch
	// SearchResult carries a scored and sorted candidate list back from the
	// Engine to the Renderer, tagged with the timestamp of the query it was
	// computed against.
	SearchResult
	// Up moves the selection cursor up one row.
	Up
	// Down moves the selection cursor down one row.
	Down
	// Done signals the user accepted the current selection.
	Done
	// Exit signals the user aborted without selecting anything.
	Exit
)

// Event is the message type carried on every pipeline channel. Only the
// fields relevant to Kind are populated; the rest are zero values.
type Event struct {
	Kind Kind

	Line *text.Text // NewLine

	Query         string // Search
	CursorFromEnd int    // Search, how many graphemes sit after the cursor
	Timestamp     uint64 // Search, SearchResult, FlushSearch result

	Matches    []Candidate // SearchResult, FlushSearch result
	TotalLines int         // SearchResult, FlushSearch result, for the gauge's denominator
}

// Candidate is the Renderer-facing projection of a fuzzy.Candidate: just
// enough to paint a row, without coupling event to the fuzzy package's
// scoring internals.
type Candidate struct {
	Text    *text.Text
	Matches []int
}
