package pretty

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/mdsplit/pkg/syntax"
)

const tablePadding = 2

// FormatPatternTable renders pattern rows as an aligned table.
// Markers are quoted so trailing spaces stay visible.
func (s *Styles) FormatPatternTable(patterns []syntax.Pattern) string {
	header := []string{"KIND", "CATEGORY", "OPEN", "CLOSE", "PRECEDENCE"}

	rows := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		closeMarker := ""
		if p.IsWrapper() {
			closeMarker = strconv.Quote(p.Close)
		}
		rows = append(rows, []string{
			string(p.Kind),
			string(p.Category),
			strconv.Quote(p.Open),
			closeMarker,
			strconv.Itoa(p.Precedence),
		})
	}

	widths := make([]int, len(header))
	for i, title := range header {
		widths[i] = runewidth.StringWidth(title)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var builder strings.Builder
	builder.WriteString(s.TableHeader.Render(formatCells(header, widths)) + "\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	total += tablePadding * (len(widths) - 1)
	builder.WriteString(s.TableBorder.Render(strings.Repeat("-", total)) + "\n")

	for _, row := range rows {
		builder.WriteString(formatCells(row, widths) + "\n")
	}

	return builder.String()
}

// formatCells pads each cell to its column width. The last column is not padded.
func formatCells(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			padded[i] = cell
			continue
		}
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(padded, strings.Repeat(" ", tablePadding))
}
