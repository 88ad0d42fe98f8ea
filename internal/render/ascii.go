package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// ASCIIBlock is the bounding box of a trimmed piece of ASCII art.
type ASCIIBlock struct {
	Width  int
	Height int
}

// TrimASCII right-trims every line, drops lines left empty, and joins the
// rest with newlines. The result never ends in a newline.
func TrimASCII(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// MeasureASCII reports the widest line in cells and the number of lines.
// Escape sequences embedded in the art take no columns. Empty text measures 0x0.
func MeasureASCII(text string) ASCIIBlock {
	if text == "" {
		return ASCIIBlock{}
	}
	lines := strings.Split(text, "\n")
	block := ASCIIBlock{Height: len(lines)}
	for _, line := range lines {
		block.Width = max(block.Width, textWidth(line))
	}
	return block
}

// tabWidth is the distance between terminal tab stops.
const tabWidth = 8

// textWidth is the number of terminal cells s occupies when printed from
// column 0. Tabs advance to the next tab stop.
func textWidth(s string) int {
	if !strings.Contains(s, "\t") {
		return lipgloss.Width(s)
	}
	col := 0
	segments := strings.Split(s, "\t")
	for i, seg := range segments {
		col += lipgloss.Width(seg)
		if i < len(segments)-1 {
			col = (col/tabWidth + 1) * tabWidth
		}
	}
	return col
}
