package render

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Cursor is the set of absolute-position primitives the layout is painted with.
// Coordinates passed to PrintAt are 0-based; SetCursorPosition takes the
// terminal's row and column values as-is.
type Cursor interface {
	// PrintAt writes text at (x, y) and leaves the terminal cursor where it was.
	PrintAt(text string, x, y int)
	// SetCursorPosition moves the cursor, optionally followed by a newline.
	SetCursorPosition(x, y int, advanceLine bool)
	// Print writes text at the current cursor position.
	Print(text string)
	// ClearScreen erases the whole screen.
	ClearScreen()
	// Err reports the first write error, if any.
	Err() error
}

// Backend names a Cursor implementation.
type Backend string

const (
	BackendANSI    Backend = "ansi"
	BackendTermenv Backend = "termenv"
)

// ParseBackend validates a configured backend name. Empty selects BackendANSI.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case "", BackendANSI:
		return BackendANSI, nil
	case BackendTermenv:
		return BackendTermenv, nil
	}
	return "", fmt.Errorf("unknown cursor backend %q (want %q or %q)", s, BackendANSI, BackendTermenv)
}

// NewCursor returns the Cursor for backend writing to w.
func NewCursor(backend Backend, w io.Writer) Cursor {
	if backend == BackendTermenv {
		return NewTermenvCursor(w)
	}
	return NewANSICursor(w)
}

const (
	saveCursor    = "\x1b7"
	restoreCursor = "\x1b8"
	clearScreen   = "\x1b[H\x1b[2J"
)

// errWriter keeps the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) writeString(s string) {
	_, _ = io.WriteString(e, s)
}

// ANSICursor emits DEC save/restore (ESC 7 / ESC 8) and CSI positioning directly.
type ANSICursor struct {
	out *errWriter
}

// NewANSICursor creates a raw escape-sequence cursor writing to w.
func NewANSICursor(w io.Writer) *ANSICursor {
	return &ANSICursor{out: &errWriter{w: w}}
}

func (c *ANSICursor) PrintAt(text string, x, y int) {
	c.out.writeString(fmt.Sprintf("%s\x1b[%d;%df%s%s", saveCursor, y+1, x+1, text, restoreCursor))
}

func (c *ANSICursor) SetCursorPosition(x, y int, advanceLine bool) {
	seq := fmt.Sprintf("\x1b[%d;%dH", y, x)
	if advanceLine {
		seq += "\n"
	}
	c.out.writeString(seq)
}

func (c *ANSICursor) Print(text string) {
	c.out.writeString(text)
}

func (c *ANSICursor) ClearScreen() {
	c.out.writeString(clearScreen)
}

func (c *ANSICursor) Err() error {
	return c.out.err
}

// TermenvCursor routes the same primitives through termenv's screen helpers.
// termenv saves the cursor with CSI s / CSI u instead of ESC 7 / ESC 8.
type TermenvCursor struct {
	out *errWriter
	env *termenv.Output
}

// NewTermenvCursor creates a termenv-backed cursor writing to w.
func NewTermenvCursor(w io.Writer) *TermenvCursor {
	ew := &errWriter{w: w}
	return &TermenvCursor{
		out: ew,
		env: termenv.NewOutput(ew, termenv.WithProfile(termenv.ANSI)),
	}
}

func (c *TermenvCursor) PrintAt(text string, x, y int) {
	c.env.SaveCursorPosition()
	c.env.MoveCursor(y+1, x+1)
	c.out.writeString(text)
	c.env.RestoreCursorPosition()
}

func (c *TermenvCursor) SetCursorPosition(x, y int, advanceLine bool) {
	c.env.MoveCursor(y, x)
	if advanceLine {
		c.out.writeString("\n")
	}
}

func (c *TermenvCursor) Print(text string) {
	c.out.writeString(text)
}

func (c *TermenvCursor) ClearScreen() {
	c.env.ClearScreen()
}

func (c *TermenvCursor) Err() error {
	return c.out.err
}
