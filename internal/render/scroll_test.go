package render

import "testing"

func TestUpdateOffsetScrollsDownWhenSelectionPassesBottom(t *testing.T) {
	offset := UpdateOffset(0, 5, 3, 10)
	if offset != 3 {
		t.Errorf("UpdateOffset = %d, want 3", offset)
	}
}

func TestUpdateOffsetScrollsUpWhenSelectionPassesTop(t *testing.T) {
	offset := UpdateOffset(5, 2, 3, 10)
	if offset != 2 {
		t.Errorf("UpdateOffset = %d, want 2", offset)
	}
}

func TestUpdateOffsetStaysPutWhenSelectionAlreadyVisible(t *testing.T) {
	offset := UpdateOffset(2, 3, 3, 10)
	if offset != 2 {
		t.Errorf("UpdateOffset = %d, want 2 (unchanged)", offset)
	}
}

func TestUpdateOffsetNeverGoesNegative(t *testing.T) {
	offset := UpdateOffset(0, 0, 3, 10)
	if offset < 0 {
		t.Errorf("UpdateOffset = %d, want >= 0", offset)
	}
}

func TestUpdateOffsetClampsToMaxWhenListShrinks(t *testing.T) {
	offset := UpdateOffset(7, 1, 3, 4)
	if offset > 1 {
		t.Errorf("UpdateOffset = %d, want <= 1 once the list shrinks to 4 items", offset)
	}
}
