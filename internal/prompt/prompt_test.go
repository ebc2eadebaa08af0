package prompt

import "testing"

func TestAddAppendsAtCursor(t *testing.T) {
	p := New("")
	p.Add("f")
	p.Add("o")
	p.Add("o")

	if got := p.Text(); got != "foo" {
		t.Errorf("Text() = %q, want %q", got, "foo")
	}
}

func TestBackspaceUndoesAdd(t *testing.T) {
	p := New("foo")
	before := p.Text()

	p.Add("!")
	p.Backspace()

	if got := p.Text(); got != before {
		t.Errorf("backspacing a just-added grapheme should restore the prompt: got %q, want %q", got, before)
	}
}

func TestBackspaceOnEmptyIsNoop(t *testing.T) {
	p := New("")
	p.Backspace()

	if got := p.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestLeftRightMoveCursorWithoutChangingText(t *testing.T) {
	p := New("abc")
	clockBefore := p.Timestamp()

	p.Left()
	p.Left()
	p.Right()

	if got := p.Text(); got != "abc" {
		t.Errorf("cursor moves should not change text: got %q", got)
	}
	if p.Timestamp() != clockBefore {
		t.Errorf("cursor moves should not bump the clock")
	}
}

func TestInsertAtMidCursor(t *testing.T) {
	p := New("ac")
	p.Left()
	p.Add("b")

	if got := p.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
}

func TestToStartAndToEnd(t *testing.T) {
	p := New("abc")
	p.ToStart()
	if got := p.CursorUntilEnd(); got != 3 {
		t.Errorf("CursorUntilEnd() after ToStart = %d, want 3", got)
	}

	p.ToEnd()
	if got := p.CursorUntilEnd(); got != 0 {
		t.Errorf("CursorUntilEnd() after ToEnd = %d, want 0", got)
	}
}

func TestClearResetsBufferAndCursor(t *testing.T) {
	p := New("abc")
	p.Clear()

	if got := p.Text(); got != "" {
		t.Errorf("Text() after Clear = %q, want empty", got)
	}
	if got := p.CursorUntilEnd(); got != 0 {
		t.Errorf("CursorUntilEnd() after Clear = %d, want 0", got)
	}
}

func TestTimestampMonotonicallyIncreasesOnEdits(t *testing.T) {
	p := New("")
	last := p.Timestamp()

	for _, op := range []func(){
		func() { p.Add("x") },
		func() { p.Add("y") },
		p.Backspace,
		p.Clear,
	} {
		op()
		next := p.Timestamp()
		if next <= last {
			t.Errorf("timestamp did not advance: %d -> %d", last, next)
		}
		last = next
	}
}
