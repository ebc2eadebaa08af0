package fuzzy

import "github.com/jhbabon/scout/internal/text"

// Score scores subject against query, returning false when subject does not
// even contain query as a (optional-grapheme-skipping) subsequence. It also
// returns false when none of the three scores below applies; the alignment
// places every query grapheme, optional ones included, on a subject
// grapheme, so a query such as "f oo" is rejected against "foo".
//
// Three candidate scores are computed and the best one wins: a contiguous
// exact-substring match, a whole-query acronym match, and a dynamic-
// programming search for the best-scoring way to align query against
// subject allowing gaps. The DP reuses the acronym score computed once for
// the whole pair as the per-cell bonus at every start-of-word column, since
// an acronym match is a property of the pair, not of any single cell.
func Score(query *Query, subject *text.Text) (Candidate, bool) {
	if query.Len() == 0 {
		return NewCandidate(subject), true
	}

	if !IsMatch(query, subject) {
		return Candidate{}, false
	}

	best := Candidate{Score: -1}

	if exact, ok := ScoreExactMatch(query, subject); ok {
		best = Candidate{Text: subject, Score: exact.Score, Matches: exact.Matches}
	}

	acronym, hasAcronym := ScoreAcronyms(query, subject)

	if hasAcronym && acronym.Count == query.Len() {
		whole := ScoreQuality(query.Len(), subject.Len(), acronym.Score, acronym.Position)
		if whole > best.Score {
			best = Candidate{Text: subject, Score: whole, Matches: acronym.Matches}
		}
	}

	if dp, ok := scoreByAlignment(query, subject, acronym, hasAcronym); ok {
		if dp.Score > best.Score {
			best = dp
		}
	}

	if best.Score < 0 {
		return Candidate{}, false
	}

	best.Text = subject
	return best, true
}

// scoreByAlignment runs the gap-tolerant dynamic program: H[i][j] is the
// best score for aligning query[0..=i] against subject[0..=j]. Moving
// Diagonal consumes a query grapheme at subject position j, scored via
// ScoreCharacter; moving Left skips a subject grapheme while carrying the
// best score found so far in the row forward.
func scoreByAlignment(query *Query, subject *text.Text, acronym AcronymResult, hasAcronym bool) (Candidate, bool) {
	queryLen := query.Len()
	subjectLen := subject.Len()

	if queryLen == 0 || subjectLen == 0 || subjectLen < queryLen {
		return Candidate{}, false
	}

	queryLower := query.LowercaseGraphemes()
	subjectLower := subject.LowercaseGraphemes()

	h := make([][]float32, queryLen)
	for i := range h {
		h[i] = make([]float32, subjectLen)
	}
	trace := NewTraceMatrix(queryLen, subjectLen)

	acronymScore := float32(0)
	if hasAcronym {
		acronymScore = acronym.Score
	}

	for i := 0; i < queryLen; i++ {
		for j := 0; j < subjectLen; j++ {
			left := float32(0)
			if j > 0 {
				left = h[i][j-1]
			}

			if queryLower[i] != subjectLower[j] {
				h[i][j] = left
				trace.Set(i, j, Left)
				continue
			}

			diagonal := float32(0)
			if i > 0 && j > 0 {
				diagonal = h[i-1][j-1]
			} else if i > 0 {
				// No subject grapheme remains to the left for query position
				// i, so this cell cannot extend a previous match.
				h[i][j] = left
				trace.Set(i, j, Left)
				continue
			}

			isStart := IsStartOfWord(subject, j)
			consecutiveScore := ScoreConsecutives(query, subject, i, j, isStart)
			character := ScoreCharacter(j, isStart, acronymScore, consecutiveScore)

			candidate := diagonal + character
			if candidate >= left {
				h[i][j] = candidate
				trace.Set(i, j, Diagonal)
			} else {
				h[i][j] = left
				trace.Set(i, j, Left)
			}
		}
	}

	bestJ := subjectLen - 1
	score := h[queryLen-1][bestJ]
	matches := trace.Traceback(queryLen-1, bestJ)

	if len(matches) != queryLen {
		return Candidate{}, false
	}

	return Candidate{Score: score, Matches: matches}, true
}
