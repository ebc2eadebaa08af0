// Package fuzzy implements the heuristic scorer: acronym detection,
// exact-substring matches, consecutive-run dynamic programming, case
// sensitivity, position bonuses and length penalties, combined into a single
// Candidate score. The constants below are part of the scorer's public
// behavior — the ordering properties in the property tests pin them.
package fuzzy

const (
	// wm is the match-weight multiplier applied to quality/consecutive/
	// acronym scores before they are folded into a position score.
	wm = 150.0

	// positionBoost, positionBonus and positionMin shape scorePosition: the
	// first positionBonus graphemes of a subject receive a boosted,
	// quadratically decaying bonus for being near the start of the string.
	positionBoost = 100.0
	positionBonus = 20.0
	positionMin   = 0.0

	// tauSize is the length-penalty half-life: the full match score is
	// halved once the subject/query length difference reaches it.
	tauSize = 150.0

	// acronymFrequency rejects a "unique acronym" claim once the subject is
	// longer than acronymFrequency times the acronym size, filtering out
	// long paths that happen to contain enough word starts by chance.
	acronymFrequency = 12
)

// wordSeparators are the graphemes that mark a word boundary.
var wordSeparators = map[string]bool{
	" ":  true,
	".":  true,
	"-":  true,
	"_":  true,
	"/":  true,
	"\\": true,
}

// optionalGraphemes may be skipped in the query when IsMatch tests whether it
// is a subsequence of the subject (e.g. "f oo" passes IsMatch against "foo").
// Score's alignment does not skip them, so Score still rejects that pair.
var optionalGraphemes = map[string]bool{
	" ":  true,
	":":  true,
	"-":  true,
	"_":  true,
	"/":  true,
	"\\": true,
}
