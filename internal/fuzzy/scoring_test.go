package fuzzy

import (
	"testing"

	"github.com/jhbabon/scout/internal/text"
)

func TestScoreSize(t *testing.T) {
	if got := ScoreSize(3, 3); got != 1.0 {
		t.Errorf("ScoreSize(3,3) = %v, want 1.0", got)
	}

	if got := ScoreSize(3, 153); got-0.5 > 0.0001 || 0.5-got > 0.0001 {
		t.Errorf("ScoreSize(3,153) = %v, want ~0.5", got)
	}
}

func TestScorePositionNearStart(t *testing.T) {
	if got := ScorePosition(0); got != positionBoost+positionBonus*positionBonus {
		t.Errorf("ScorePosition(0) = %v, want %v", got, positionBoost+positionBonus*positionBonus)
	}
}

func TestScorePositionFarFromStart(t *testing.T) {
	if got := ScorePosition(1000); got != positionMin {
		t.Errorf("ScorePosition(1000) = %v, want %v", got, positionMin)
	}
}

func TestScoreAcronymsRequiresTwoMatches(t *testing.T) {
	query := NewQuery("c")
	subject := text.Build("controller")

	if _, ok := ScoreAcronyms(query, subject); ok {
		t.Errorf("ScoreAcronyms with single-grapheme query should fail")
	}
}

func TestScoreAcronymsMatchesWordStarts(t *testing.T) {
	query := NewQuery("ic")
	subject := text.Build("ImportanceTableCtrl.js")

	result, ok := ScoreAcronyms(query, subject)
	if !ok {
		t.Fatalf("ScoreAcronyms(%q, %q) expected a match", "ic", "ImportanceTableCtrl.js")
	}
	if result.Count < 2 {
		t.Errorf("ScoreAcronyms count = %d, want >= 2", result.Count)
	}
}

func TestScoreExactMatchFindsContiguousRun(t *testing.T) {
	query := NewQuery("file")
	subject := text.Build("file.txt")

	result, ok := ScoreExactMatch(query, subject)
	if !ok {
		t.Fatalf("ScoreExactMatch(%q, %q) expected a match", "file", "file.txt")
	}
	if len(result.Matches) != 4 {
		t.Errorf("len(Matches) = %d, want 4", len(result.Matches))
	}
	for i, m := range result.Matches {
		if m != i {
			t.Errorf("Matches[%d] = %d, want %d", i, m, i)
		}
	}
}

func TestScoreExactMatchRetriesForWordStart(t *testing.T) {
	query := NewQuery("file")
	subject := text.Build("a_file.rs")

	result, ok := ScoreExactMatch(query, subject)
	if !ok {
		t.Fatalf("ScoreExactMatch(%q, %q) expected a match", "file", "a_file.rs")
	}
	if result.Matches[0] != 2 {
		t.Errorf("Matches[0] = %d, want 2 (start of word after separator)", result.Matches[0])
	}
}

func TestScoreConsecutivesSingleCharacter(t *testing.T) {
	query := NewQuery("x")
	subject := text.Build("x")

	got := ScoreConsecutives(query, subject, 0, 0, true)
	if got != 3 {
		t.Errorf("ScoreConsecutives single same-case char = %v, want 3", got)
	}
}

func TestScorePatternRewardsFullMatch(t *testing.T) {
	partial := ScorePattern(2, 4, 2, false, false)
	full := ScorePattern(4, 4, 4, true, true)

	if full <= partial {
		t.Errorf("ScorePattern full match %v should outscore partial %v", full, partial)
	}
}
