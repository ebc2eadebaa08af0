// Package render paints a Frame — the prompt, gauge, and the visible
// window of scored candidates — as raw ANSI escape sequences, the way the
// original renderer wrote directly to the alternate screen rather than
// going through a retained-mode terminal library.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jhbabon/scout/internal/config"
	"github.com/jhbabon/scout/internal/event"
	"github.com/jhbabon/scout/internal/style"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	clearLine   = "\x1b[2K"
)

// Frame is everything Render needs to draw one pass: the prompt text and
// cursor position, the gauge counts, the visible slice of matches, which of
// them is selected, and the viewport it must fit inside.
type Frame struct {
	Query          string
	CursorFromEnd  int
	MatchedCount   int
	TotalCount     int
	Matches        []event.Candidate
	SelectionIndex int
	Offset         int
	Height         int
	Width          int
}

// Render writes one full frame to w: a clear, the visible matches (selected
// row styled distinctly, matched graphemes highlighted) padded to Height-2
// rows, the gauge, and finally the prompt line with the cursor repositioned
// onto it.
func Render(w io.Writer, cfg config.Config, f Frame) error {
	var b strings.Builder

	b.WriteString(cursorHome)
	b.WriteString(clearScreen)

	visible := visibleRows(f)
	for i, m := range visible {
		row := f.Offset + i
		selected := row == f.SelectionIndex
		writeRow(&b, cfg, m, selected)
		b.WriteString("\r\n")
	}

	for i := len(visible); i < f.Height-2; i++ {
		b.WriteString(clearLine)
		b.WriteString("\r\n")
	}

	writeGauge(&b, cfg, f)
	b.WriteString("\r\n")
	writePrompt(&b, cfg, f)

	_, err := io.WriteString(w, b.String())
	return err
}

func visibleRows(f Frame) []event.Candidate {
	rowsAvailable := f.Height - 2
	if rowsAvailable < 0 {
		rowsAvailable = 0
	}

	end := f.Offset + rowsAvailable
	if end > len(f.Matches) {
		end = len(f.Matches)
	}
	if f.Offset > end {
		return nil
	}

	return f.Matches[f.Offset:end]
}

func writeRow(b *strings.Builder, cfg config.Config, c event.Candidate, selected bool) {
	symbol := cfg.Candidate.Symbol
	matchStyle := cfg.Candidate.StyleMatch

	if selected {
		symbol = cfg.Selection.Symbol
		matchStyle = cfg.Selection.StyleMatch
		b.WriteString(sgr(cfg.Selection.Style))
	}

	b.WriteString(symbol)
	writeHighlighted(b, c, matchStyle)
	b.WriteString(sgrReset())
}

func writeHighlighted(b *strings.Builder, c event.Candidate, matchStyle style.Style) {
	matched := make(map[int]bool, len(c.Matches))
	for _, m := range c.Matches {
		matched[m] = true
	}

	graphemes := c.Text.Graphemes()
	for i, g := range graphemes {
		if matched[i] {
			b.WriteString(sgr(matchStyle))
			b.WriteString(g)
			b.WriteString(sgrReset())
		} else {
			b.WriteString(g)
		}
	}
}

func writeGauge(b *strings.Builder, cfg config.Config, f Frame) {
	b.WriteString(sgr(cfg.Gauge.Style))
	b.WriteString(cfg.Gauge.Prefix)
	fmt.Fprintf(b, "%d%s%d", f.MatchedCount, cfg.Gauge.Symbol, f.TotalCount)
	b.WriteString(sgrReset())
}

func writePrompt(b *strings.Builder, cfg config.Config, f Frame) {
	b.WriteString(sgr(cfg.Prompt.Style))
	b.WriteString(cfg.Prompt.Symbol)
	b.WriteString(f.Query)
	b.WriteString(sgrReset())

	if f.CursorFromEnd > 0 {
		fmt.Fprintf(b, "\x1b[%dD", f.CursorFromEnd)
	}
}

// displayWidth reports how many terminal columns s occupies, accounting
// for wide CJK characters, via go-runewidth.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
