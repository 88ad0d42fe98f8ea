package render

import (
	"fmt"
	"strings"
)

// Color selects a foreground color from the fixed palette.
type Color int

// Regular colors followed by their bright variants.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorCodes = [...]string{
	"\x1b[30m",
	"\x1b[31m",
	"\x1b[32m",
	"\x1b[33m",
	"\x1b[34m",
	"\x1b[35m",
	"\x1b[36m",
	"\x1b[37m",
	"\x1b[30;1m",
	"\x1b[31;1m",
	"\x1b[32;1m",
	"\x1b[33;1m",
	"\x1b[34;1m",
	"\x1b[35;1m",
	"\x1b[36;1m",
	"\x1b[37;1m",
}

// Reset clears all color and decoration attributes. It is appended to
// every colorized string and is never selectable as a Color.
const Reset = "\x1b[0m"

// PaletteSize is the number of selectable colors.
const PaletteSize = len(colorCodes)

// ParseColor converts a configured palette index into a Color.
func ParseColor(index int) (Color, error) {
	if index < 0 || index >= PaletteSize {
		return 0, fmt.Errorf("color index %d out of range 0..%d", index, PaletteSize-1)
	}
	return Color(index), nil
}

// Code returns the escape sequence that selects c.
func (c Color) Code() string {
	return colorCodes[c]
}

// Decoration is a text attribute applied after the color.
type Decoration int

const (
	Bold Decoration = iota
	Underline
	Reversed
)

var decorationCodes = [...]string{
	"\x1b[1m",
	"\x1b[4m",
	"\x1b[7m",
}

// Code returns the escape sequence that enables d.
func (d Decoration) Code() string {
	return decorationCodes[d]
}

// Colorize wraps text in the color escape, each decoration escape in the
// order given, and a trailing reset.
func Colorize(text string, color Color, decorations ...Decoration) string {
	var b strings.Builder
	b.WriteString(color.Code())
	for _, d := range decorations {
		b.WriteString(d.Code())
	}
	b.WriteString(text)
	b.WriteString(Reset)
	return b.String()
}
