package pipeline

import (
	"bufio"
	"io"

	"github.com/jhbabon/scout/internal/event"
	"github.com/jhbabon/scout/internal/prompt"
)

// Key codes recognized off the raw tty stream. Arrow keys arrive as the
// three-byte ANSI escape sequences \x1b[A..\x1b[D.
const (
	keyCtrlA      = 0x01
	keyCtrlC      = 0x03
	keyCtrlE      = 0x05
	keyCtrlN      = 0x0e
	keyCtrlP      = 0x10
	keyCtrlU      = 0x15
	keyTab        = 0x09
	keyBackspace  = 0x7f
	keyBackspace2 = 0x08
	keyEnter      = 0x0d
	keyNewline    = 0x0a
	keyEscape     = 0x1b
)

// ReadKeys consumes raw bytes from r until the user accepts a selection
// (Enter) or aborts (Ctrl-C/Escape/EOF on the tty), translating each key
// into Search/Up/Down events. Text edits and selection moves are sent to
// toRenderer so the prompt and list repaint immediately; only edits that
// change the query text are also sent to toEngine, since cursor-only moves
// have nothing new to score.
func ReadKeys(r io.Reader, toEngine, toRenderer chan<- event.Event, p *prompt.Prompt) {
	reader := bufio.NewReader(r)

	emitQuery := func() {
		ev := event.Event{Kind: event.Search, Query: p.Text(), CursorFromEnd: p.CursorUntilEnd(), Timestamp: p.Timestamp()}
		toEngine <- ev
		toRenderer <- ev
	}

	emitCursorMove := func() {
		toRenderer <- event.Event{Kind: event.Search, Query: p.Text(), CursorFromEnd: p.CursorUntilEnd(), Timestamp: p.Timestamp()}
	}

	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			toRenderer <- event.Event{Kind: event.Exit}
			return
		}

		if r >= 0x80 {
			p.Add(string(r))
			emitQuery()
			continue
		}
		b := byte(r)

		switch b {
		case keyCtrlC, keyEscape:
			if b == keyEscape && peekIsEscapeSequence(reader) {
				switch readEscapeSequence(reader) {
				case 'A':
					toRenderer <- event.Event{Kind: event.Up}
				case 'B':
					toRenderer <- event.Event{Kind: event.Down}
				case 'C':
					p.Right()
					emitCursorMove()
				case 'D':
					p.Left()
					emitCursorMove()
				}
				continue
			}
			toRenderer <- event.Event{Kind: event.Exit}
			return

		case keyEnter, keyNewline:
			toRenderer <- event.Event{Kind: event.Done}
			return

		case keyBackspace, keyBackspace2:
			p.Backspace()
			emitQuery()

		case keyCtrlU:
			p.Clear()
			emitQuery()

		case keyCtrlA:
			p.ToStart()
			emitCursorMove()

		case keyCtrlE:
			p.ToEnd()
			emitCursorMove()

		case keyCtrlP:
			toRenderer <- event.Event{Kind: event.Up}

		case keyCtrlN:
			toRenderer <- event.Event{Kind: event.Down}

		case keyTab:
			// Reserved: no behavior defined for tab.

		default:
			if r >= 0x20 {
				p.Add(string(r))
				emitQuery()
			}
		}
	}
}

// peekIsEscapeSequence reports whether the byte following an ESC is already
// buffered and is '[', which is how every arrow key sequence this reader
// understands begins. It never waits for more input, so a lone ESC is seen
// as a plain Escape key.
func peekIsEscapeSequence(r *bufio.Reader) bool {
	if r.Buffered() == 0 {
		return false
	}
	next, err := r.Peek(1)
	return err == nil && len(next) == 1 && next[0] == '['
}

// readEscapeSequence consumes the '[' and the final letter of a CSI
// sequence, returning that letter ('A'-'D' for arrow keys).
func readEscapeSequence(r *bufio.Reader) byte {
	r.ReadByte() // '['
	final, err := r.ReadByte()
	if err != nil {
		return 0
	}
	return final
}
