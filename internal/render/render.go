package render

import (
	"strings"

	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/logger"
)

// Frame is everything painted by one Render call.
type Frame struct {
	Lines []DataLine
	// Art is the raw ASCII image. It is trimmed before measuring.
	Art string
	// ShowArt paints Art beside the lines. A blank Art still counts as shown
	// and simply occupies no cells.
	ShowArt bool
}

// Renderer paints a Frame through a Cursor.
type Renderer struct {
	cursor Cursor
	layout LayoutOptions
	log    logger.Logger
}

// NewRenderer creates a renderer. A nil log discards messages.
func NewRenderer(c Cursor, layout LayoutOptions, log logger.Logger) *Renderer {
	if log == nil {
		log = logger.Noop()
	}
	return &Renderer{cursor: c, layout: layout, log: log}
}

// FinalPosition is where the cursor is parked after painting: one row past
// the taller of the art block and the text block.
func FinalPosition(block ASCIIBlock, lineCount int, offset Position) Position {
	return Position{X: 0, Y: max(block.Height, lineCount+offset.Y) + 1}
}

// Render clears the screen, paints the art at the origin, paints the lines
// to the right of it, and leaves the cursor on a fresh line below both.
// It returns the position the cursor was parked at.
func (r *Renderer) Render(frame Frame) (Position, error) {
	layout := r.layout

	var art string
	var block ASCIIBlock
	if frame.ShowArt {
		art = TrimASCII(frame.Art)
		block = MeasureASCII(art)
		layout.Offset.X += block.Width
	}
	final := FinalPosition(block, len(frame.Lines), layout.Offset)

	r.log.Debug("art %dx%d, %d lines at (%d,%d), %s align, cursor parks at row %d",
		block.Width, block.Height, len(frame.Lines), layout.Offset.X, layout.Offset.Y, layout.Align, final.Y)

	r.cursor.ClearScreen()

	if block.Height > 0 {
		r.cursor.SetCursorPosition(0, 0, false)
		for _, line := range strings.Split(art, "\n") {
			r.cursor.Print(line + "\n")
		}
	}

	PrintLines(r.cursor, frame.Lines, layout)

	r.cursor.SetCursorPosition(final.X, final.Y, true)

	if err := r.cursor.Err(); err != nil {
		return final, errors.WrapWithCode(err, errors.ErrRender,
			"Failed to write the panel to the terminal",
			"Check that stdout is writable")
	}
	return final, nil
}
