// Package prompt implements the cursor-aware input buffer the KeyReader
// task mutates as the user types, and the monotonic logical clock used to
// tell a stale search result from a fresh one.
package prompt

import "strings"

// Prompt is an editable buffer of grapheme clusters with a cursor position,
// plus a logical clock that advances every time the buffer's text changes.
// The clock lets a Renderer reject a search result that arrived after a
// newer edit was already made, without relying on wall-clock time.
type Prompt struct {
	graphemes []string
	cursor    int
	clock     uint64
}

// New returns a prompt seeded with an initial query (so "scout --search foo"
// starts pre-filled), or an empty one for "", with the cursor at the end.
func New(initial string) *Prompt {
	p := &Prompt{}
	for _, g := range splitGraphemes(initial) {
		p.graphemes = append(p.graphemes, g)
	}
	p.cursor = len(p.graphemes)
	return p
}

// splitGraphemes is a minimal ASCII/rune splitter; the prompt only ever
// receives one grapheme at a time from the terminal key reader, so this is
// only exercised by New's initial-query seeding.
func splitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// Add inserts grapheme g at the cursor and advances the cursor past it,
// then bumps the clock.
func (p *Prompt) Add(g string) {
	p.graphemes = append(p.graphemes[:p.cursor], append([]string{g}, p.graphemes[p.cursor:]...)...)
	p.cursor++
	p.tick()
}

// Backspace removes the grapheme immediately before the cursor, if any,
// then bumps the clock.
func (p *Prompt) Backspace() {
	if p.cursor == 0 {
		return
	}
	p.graphemes = append(p.graphemes[:p.cursor-1], p.graphemes[p.cursor:]...)
	p.cursor--
	p.tick()
}

// Clear empties the buffer and resets the cursor, then bumps the clock.
func (p *Prompt) Clear() {
	p.graphemes = nil
	p.cursor = 0
	p.tick()
}

// Left moves the cursor one grapheme left, if possible. Cursor moves do not
// change the text, so they do not bump the clock on their own; callers that
// need the engine re-notified still send the current timestamp downstream.
func (p *Prompt) Left() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// Right moves the cursor one grapheme right, if possible.
func (p *Prompt) Right() {
	if p.cursor < len(p.graphemes) {
		p.cursor++
	}
}

// ToStart moves the cursor to the beginning of the buffer.
func (p *Prompt) ToStart() {
	p.cursor = 0
}

// ToEnd moves the cursor to the end of the buffer.
func (p *Prompt) ToEnd() {
	p.cursor = len(p.graphemes)
}

// Text returns the buffer's current contents as a single string.
func (p *Prompt) Text() string {
	return strings.Join(p.graphemes, "")
}

// Len returns the number of graphemes currently in the buffer.
func (p *Prompt) Len() int {
	return len(p.graphemes)
}

// CursorUntilEnd returns how many graphemes lie after the cursor, which is
// how far a renderer must move the terminal cursor left after painting the
// full buffer to put the visible cursor back where the user expects it.
func (p *Prompt) CursorUntilEnd() int {
	return len(p.graphemes) - p.cursor
}

// Timestamp returns the prompt's current logical clock value.
func (p *Prompt) Timestamp() uint64 {
	return p.clock
}

func (p *Prompt) tick() {
	p.clock++
}
