// Package terminal owns the raw-mode and alternate-screen lifecycle of the
// controlling tty: entering and leaving them, and querying window size. It
// always talks to /dev/tty directly rather than stdout, since stdout may be
// the pipe scout writes its final selection to.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
)

// Size is a terminal's width and height in character cells.
type Size struct {
	Rows int
	Cols int
}

// Terminal wraps the open tty device, the raw-mode state needed to restore
// it, and whether the alternate screen was entered, so Close can release
// exactly what Open acquired, on any exit path including a panic.
type Terminal struct {
	tty      *os.File
	oldState *term.State
	altScreen bool
}

// Open opens /dev/tty, switches it to raw mode, and optionally enters the
// alternate screen buffer for fullScreen layouts.
func Open(fullScreen bool) (*Terminal, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening /dev/tty: %w", err)
	}

	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		tty.Close()
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	t := &Terminal{tty: tty, oldState: oldState}

	if fullScreen {
		if _, err := tty.WriteString(enterAltScreen + hideCursor); err != nil {
			t.Close()
			return nil, fmt.Errorf("entering alternate screen: %w", err)
		}
		t.altScreen = true
	}

	return t, nil
}

// Close restores the terminal to the state it was in before Open, releasing
// the alternate screen first (if entered) and then the raw-mode termios.
// It is safe to call more than once and safe to defer unconditionally.
func (t *Terminal) Close() error {
	if t == nil || t.tty == nil {
		return nil
	}

	if t.altScreen {
		t.tty.WriteString(showCursor + exitAltScreen)
		t.altScreen = false
	}

	var err error
	if t.oldState != nil {
		err = term.Restore(int(t.tty.Fd()), t.oldState)
		t.oldState = nil
	}

	closeErr := t.tty.Close()
	t.tty = nil

	if err != nil {
		return err
	}
	return closeErr
}

// File returns the underlying tty handle, for writing rendered frames or
// reading raw key bytes.
func (t *Terminal) File() *os.File {
	return t.tty
}

// Size queries the controlling terminal's current size via TIOCGWINSZ
// against the tty fd, never against stdout, so the result is correct even
// when stdout has been redirected to a file or pipe.
func (t *Terminal) Size() (Size, error) {
	ws, err := unix.IoctlGetWinsize(int(t.tty.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, fmt.Errorf("querying window size: %w", err)
	}

	return Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// Write writes b directly to the tty.
func (t *Terminal) Write(b []byte) (int, error) {
	return t.tty.Write(b)
}

// Read reads raw key bytes from the tty.
func (t *Terminal) Read(b []byte) (int, error) {
	return t.tty.Read(b)
}
