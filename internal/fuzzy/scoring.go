package fuzzy

import "github.com/jhbabon/scout/internal/text"

// AcronymResult carries the outcome of ScoreAcronyms.
type AcronymResult struct {
	Score    float32
	Position float32
	Count    int
	Matches  []int
}

// ExactMatchResult carries the outcome of ScoreExactMatch.
type ExactMatchResult struct {
	Score   float32
	Matches []int
}

// ScoreSize penalizes the difference between query and subject length: the
// score halves once that difference reaches tauSize.
func ScoreSize(queryLen, subjectLen int) float32 {
	penalty := subjectLen - queryLen
	if penalty < 0 {
		penalty = -penalty
	}

	return tauSize / (tauSize + float32(penalty))
}

// ScorePosition rewards matches close to the start of the subject, with a
// quadratic boost for the first positionBonus graphemes.
func ScorePosition(position float32) float32 {
	if position < positionBonus {
		d := positionBonus - position
		return positionBoost + d*d
	}

	v := (positionBoost + positionBonus) - position
	if v < positionMin {
		return positionMin
	}
	return v
}

// ScoreQuality folds a pattern quality score and a position score into a
// single score, scaled by query length and the size penalty.
func ScoreQuality(queryLen, subjectLen int, quality, position float32) float32 {
	return 2.0 * float32(queryLen) * (wm*quality + ScorePosition(position)) * ScoreSize(queryLen, subjectLen)
}

// ScorePattern is the shared scoring core for exact matches, acronyms and
// consecutive runs: it rewards case-matching runs and word-boundary
// alignment, with extra credit when the whole query is consumed.
func ScorePattern(count, length, sameCase int, isStart, isEnd bool) float32 {
	sc := count
	bonus := 6

	if sameCase == count {
		bonus += 2
	}
	if isStart {
		bonus += 3
	}
	if isEnd {
		bonus += 1
	}

	if count == length {
		if isStart {
			if sameCase == length {
				sc += 2
			} else {
				sc += 1
			}
		}
		if isEnd {
			bonus++
		}
	}

	return float32(sameCase + sc*(sc+bonus))
}

// ScoreAcronyms walks query and subject in parallel looking for an acronym:
// query graphemes that each land on a start-of-word grapheme in subject, in
// order. It returns ok == false when fewer than two graphemes qualify.
func ScoreAcronyms(query *Query, subject *text.Text) (AcronymResult, bool) {
	if query.Len() <= 1 || subject.Len() <= 1 {
		return AcronymResult{}, false
	}

	queryLower := query.LowercaseGraphemes()
	subjectLower := subject.LowercaseGraphemes()

	var matches []int
	count := 0
	sepCount := 0
	sumPosition := 0
	sameCase := 0

	subjectIdx := 0
	progress := 0

queryLoop:
	for qindex, qg := range queryLower {
		if progress == subject.Len() {
			break queryLoop
		}

		for subjectIdx < len(subjectLower) {
			sg := subjectLower[subjectIdx]
			index := subjectIdx
			subjectIdx++
			progress++

			if qg != sg {
				continue
			}

			if IsWordSeparator(qg) {
				sepCount++
				break
			}

			if IsStartOfWord(subject, index) {
				sumPosition += index
				count++
				matches = append(matches, index)

				if query.GraphemeAt(qindex) == subject.GraphemeAt(index) {
					sameCase++
				}

				break
			}
		}
	}

	if count < 2 {
		return AcronymResult{}, false
	}

	fullWord := false
	if count == query.Len() {
		fullWord = IsUniqueAcronym(subject, count)
	}

	score := ScorePattern(count, query.Len(), sameCase, true, fullWord)
	if score <= 0 {
		return AcronymResult{}, false
	}

	position := float32(sumPosition) / float32(count)

	return AcronymResult{
		Score:    score,
		Position: position,
		Count:    count + sepCount,
		Matches:  matches,
	}, true
}

// sequencePosition finds the first case-insensitive contiguous occurrence of
// query inside subject starting at or after skip, returning its position and
// the number of graphemes that also matched in original case.
func sequencePosition(query *Query, subject *text.Text, skip int) (position, sameCase int, ok bool) {
	queryLower := query.LowercaseGraphemes()
	subjectLower := subject.LowercaseGraphemes()

	if skip >= len(subjectLower) {
		return 0, 0, false
	}

	qidx := 0
	sequence := false

	for sidx := skip; sidx < len(subjectLower); sidx++ {
		if qidx >= len(queryLower) {
			break
		}

		if queryLower[qidx] == subjectLower[sidx] {
			if !sequence {
				position = sidx
			}
			sequence = true

			if query.GraphemeAt(qidx) == subject.GraphemeAt(sidx) {
				sameCase++
			}
			qidx++
		} else {
			if sequence {
				// Resume right after the failed start so overlapping
				// occurrences (e.g. "ab" in "aab") are not skipped.
				sidx = position
			}
			sameCase = 0
			sequence = false
			qidx = 0
		}
	}

	if qidx < len(queryLower) {
		return 0, 0, false
	}

	return position, sameCase, true
}

// ScoreExactMatch looks for query as a contiguous substring of subject. If
// the first occurrence is not at a word start, it tries the next occurrence
// once more to see if that one lands on a word boundary instead.
func ScoreExactMatch(query *Query, subject *text.Text) (ExactMatchResult, bool) {
	position, sameCase, ok := sequencePosition(query, subject, 0)
	if !ok {
		return ExactMatchResult{}, false
	}

	isStart := IsStartOfWord(subject, position)
	if !isStart {
		if secPosition, secSameCase, ok := sequencePosition(query, subject, position+query.Len()); ok {
			if IsStartOfWord(subject, secPosition) {
				position = secPosition
				sameCase = secSameCase
				isStart = true
			}
		}
	}

	isEnd := IsEndOfWord(subject, position+query.Len()-1)
	quality := ScorePattern(query.Len(), query.Len(), sameCase, isStart, isEnd)
	score := ScoreQuality(query.Len(), subject.Len(), quality, float32(position))

	matches := make([]int, query.Len())
	for i := range matches {
		matches[i] = position + i
	}

	return ExactMatchResult{Score: score, Matches: matches}, true
}

// ScoreConsecutives scans forward from (queryPosition, subjectPosition)
// counting how long the two stay in lockstep, case insensitively, and
// returns the score of that run.
func ScoreConsecutives(query *Query, subject *text.Text, queryPosition, subjectPosition int, isStart bool) float32 {
	queryLower := query.LowercaseGraphemes()
	subjectLower := subject.LowercaseGraphemes()

	queryLeft := query.Len() - queryPosition
	subjectLeft := subject.Len() - subjectPosition
	left := subjectLeft
	if queryLeft < subjectLeft {
		left = queryLeft
	}

	sameCase := 0
	if query.GraphemeAt(queryPosition) == subject.GraphemeAt(subjectPosition) {
		sameCase++
	}

	sz := 1
	subjectCursor := subjectPosition

	qi := queryPosition + 1
	si := subjectPosition + 1
	for qi < len(queryLower) && si < len(subjectLower) {
		if queryLower[qi] != subjectLower[si] {
			break
		}

		subjectCursor = si
		if query.GraphemeAt(qi) == subject.GraphemeAt(si) {
			sameCase++
		}

		if sz >= left {
			break
		}
		sz++
		qi++
		si++
	}

	if sz == 1 {
		return float32(1 + 2*sameCase)
	}

	isEnd := IsEndOfWord(subject, subjectCursor)
	return ScorePattern(sz, query.Len(), sameCase, isStart, isEnd)
}

// ScoreCharacter folds the position score of a single subject position with
// whichever of the acronym or consecutive-run score is stronger, adding a
// start-of-word bonus.
func ScoreCharacter(position int, isStart bool, acronymScore, consecutiveScore float32) float32 {
	positionScore := ScorePosition(float32(position))

	score := consecutiveScore
	startBonus := float32(0)
	if isStart {
		startBonus = 10.0
		if acronymScore > consecutiveScore {
			score = acronymScore
		}
	}

	return positionScore + wm*(score+startBonus)
}
