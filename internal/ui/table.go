package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column. Width 0 sizes the column to its content.
type TableColumn struct {
	Title string
	Width int
}

// RenderSimpleTable renders a non-interactive table string: a bold header
// underlined in the muted color, then one line per row. Cells may contain
// escape sequences; widths are measured in terminal cells.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = max(c.Width, lipgloss.Width(c.Title))
		if c.Width > 0 {
			continue
		}
		for _, row := range rows {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(joinRow(titles, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(joinRow(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

// joinRow pads every cell but the last to its column width, two spaces apart.
func joinRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i < len(widths)-1 {
			cell = padRight(cell, widths[i])
		}
		parts[i] = cell
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// padRight pads s with spaces to width cells, leaving longer strings alone.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
