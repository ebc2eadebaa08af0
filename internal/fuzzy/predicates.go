package fuzzy

import "github.com/jhbabon/scout/internal/text"

// IsMatch reports whether query is a subsequence of subject, case
// insensitively, skipping any optionalGraphemes present in the query. It is
// the subsequence gate the scorer must satisfy before it returns a result.
func IsMatch(query *Query, subject *text.Text) bool {
	queryGraphemes := make([]string, 0, query.Len())
	for _, g := range query.LowercaseGraphemes() {
		if !optionalGraphemes[g] {
			queryGraphemes = append(queryGraphemes, g)
		}
	}

	subjectGraphemes := subject.LowercaseGraphemes()
	subjectIdx := 0
	matching := 0

	for _, qg := range queryGraphemes {
		if subjectIdx == len(subjectGraphemes) {
			break
		}

		for subjectIdx < len(subjectGraphemes) {
			sg := subjectGraphemes[subjectIdx]
			subjectIdx++
			if qg == sg {
				matching++
				break
			}
		}
	}

	return matching == len(queryGraphemes)
}

// IsUniqueAcronym reports whether subject has at most acronymSize start-of-
// word graphemes, filtering out long subjects first to bound the scan.
func IsUniqueAcronym(subject *text.Text, acronymSize int) bool {
	length := subject.Len()
	if length > acronymFrequency*acronymSize {
		return false
	}

	count := 0
	for i := 0; i < length; i++ {
		if IsStartOfWord(subject, i) {
			count++
			if count > acronymSize {
				return false
			}
		}
	}

	return true
}

// IsStartOfWord reports whether position is a start of word: the first
// grapheme, one following a separator, or a camelCase boundary (current
// grapheme differs from its lowercase form while the previous one doesn't).
func IsStartOfWord(subject *text.Text, position int) bool {
	if position == 0 {
		return true
	}

	prev := position - 1
	current := subject.GraphemeAt(position)
	prevGrapheme := subject.GraphemeAt(prev)

	if IsWordSeparator(prevGrapheme) {
		return true
	}

	return current != subject.LowercaseAt(position) && prevGrapheme == subject.LowercaseAt(prev)
}

// IsEndOfWord reports whether position is an end of word: the last
// grapheme, one before a separator, or a camelCase boundary (current equals
// its lowercase form while the next one doesn't).
func IsEndOfWord(subject *text.Text, position int) bool {
	if position == subject.LastIndex() {
		return true
	}

	next := position + 1
	current := subject.GraphemeAt(position)
	nextGrapheme := subject.GraphemeAt(next)

	if IsWordSeparator(nextGrapheme) {
		return true
	}

	return current == subject.LowercaseAt(position) && nextGrapheme != subject.LowercaseAt(next)
}

// IsWordSeparator reports whether grapheme is one of the fixed word
// separator characters.
func IsWordSeparator(grapheme string) bool {
	return wordSeparators[grapheme]
}
