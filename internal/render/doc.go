// Package render paints the vfetch panel: a block of labeled lines,
// optionally placed to the right of an ASCII art image.
//
// # Painting model
//
// The art is printed sequentially from the top-left corner. The data lines
// are then painted with absolute addressing through a Cursor: each PrintAt
// saves the cursor, jumps to the target cell, writes, and restores. Because
// the terminal cursor never moves, lines can be painted in any order and the
// two blocks do not have to be written in screen order.
//
// After painting, the cursor is parked one row below the taller of the two
// blocks so the shell prompt starts on a blank line:
//
//	row = max(artHeight, len(lines) + offset.Y) + 1
//
// # Alignment
//
//	spaces   OS      Linux       values share one column, AlignSpace
//	         Kernel  6.1         cells after the longest label
//
//	center       OS ~ Linux      labels are right-aligned and each value
//	         Kernel ~ 6.1        follows a " ~ " separator
//
// # Backends
//
// ANSICursor writes DEC save/restore (ESC 7 / ESC 8) and CSI positioning
// directly. TermenvCursor routes the same primitives through termenv.
package render
