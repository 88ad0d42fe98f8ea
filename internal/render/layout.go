package render

import (
	"fmt"
	"strings"
)

// DataLine is one labeled row of the panel.
type DataLine struct {
	Label string
	Value string
}

// AlignMode selects how values are placed relative to their labels.
type AlignMode string

const (
	// AlignSpaces puts every value in one column after the longest label.
	AlignSpaces AlignMode = "spaces"
	// AlignCenter right-aligns labels and joins each value with " ~ ".
	AlignCenter AlignMode = "center"
)

// ParseAlignMode validates a configured align mode.
func ParseAlignMode(s string) (AlignMode, error) {
	switch AlignMode(s) {
	case AlignSpaces, AlignCenter:
		return AlignMode(s), nil
	}
	return "", fmt.Errorf("unknown align mode %q (want %q or %q)", s, AlignSpaces, AlignCenter)
}

// Position is a 0-based screen cell.
type Position struct {
	X int
	Y int
}

// LayoutOptions controls where and how the data lines are painted.
type LayoutOptions struct {
	Color      Color
	Offset     Position
	Align      AlignMode
	AlignSpace int
	// NoColor paints labels without escape sequences.
	NoColor bool
}

const centerSeparator = " ~ "

// DataColumn is the x offset, relative to the block origin, of the value
// column in AlignSpaces mode.
func DataColumn(lines []DataLine, alignSpace int) int {
	column := 0
	for _, line := range lines {
		column = max(column, textWidth(line.Label)+alignSpace)
	}
	return column
}

// LongestLabel is the widest label in cells.
func LongestLabel(lines []DataLine) int {
	longest := 0
	for _, line := range lines {
		longest = max(longest, textWidth(line.Label))
	}
	return longest
}

// PadLabel left-pads label with spaces to width cells.
func PadLabel(label string, width int) string {
	pad := width - textWidth(label)
	if pad <= 0 {
		return label
	}
	return strings.Repeat(" ", pad) + label
}

// PrintLines paints lines top to bottom in input order starting at opts.Offset.
func PrintLines(c Cursor, lines []DataLine, opts LayoutOptions) {
	x := opts.Offset.X

	switch opts.Align {
	case AlignCenter:
		longest := LongestLabel(lines)
		for i, line := range lines {
			y := opts.Offset.Y + i
			c.PrintAt(opts.label(PadLabel(line.Label, longest)), x, y)
			c.PrintAt(centerSeparator+line.Value, x+longest, y)
		}
	default:
		column := DataColumn(lines, opts.AlignSpace)
		for i, line := range lines {
			y := opts.Offset.Y + i
			c.PrintAt(line.Value, x+column, y)
			c.PrintAt(opts.label(line.Label), x, y)
		}
	}
}

func (o LayoutOptions) label(text string) string {
	if o.NoColor {
		return text
	}
	return Colorize(text, o.Color, Bold)
}
