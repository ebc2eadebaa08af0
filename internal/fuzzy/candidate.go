package fuzzy

import (
	"sort"

	"github.com/jhbabon/scout/internal/text"
)

// Candidate is a subject line paired with its best score against some
// query and the subject positions that contributed to that score.
type Candidate struct {
	Text    *text.Text
	Score   float32
	Matches []int
}

// NewCandidate wraps subject with a zero score and no matches, the state a
// line has before it has ever been scored against a query.
func NewCandidate(subject *text.Text) Candidate {
	return Candidate{Text: subject}
}

// SortCandidates orders candidates by descending score, breaking ties by
// ascending text length so shorter matches surface first. NaN scores (which
// should not occur, but Go floats allow them) sort last.
func SortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.Score != b.Score {
			// Treat NaN as smaller than everything so it sinks to the end.
			if isNaN(a.Score) {
				return false
			}
			if isNaN(b.Score) {
				return true
			}
			return a.Score > b.Score
		}

		return a.Text.Len() < b.Text.Len()
	})
}

func isNaN(f float32) bool {
	return f != f
}
