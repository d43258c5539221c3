package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator
// line. Headers use the Header style. Columns are padded to the widest
// cell in each column, measured by visible width so styled cells align.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderBar renders a horizontal bar of the given value scaled against
// max, width characters wide, followed by the numeric value.
func RenderBar(value, max, width int, style lipgloss.Style) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / max
	if value > 0 && filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	bar := style.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
	return bar
}
