package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/mdsplit/pkg/analysis"
)

// breakdownLimit caps the number of files listed in a breakdown.
const breakdownLimit = 10

// FormatBreakdown lists the files with violations, one per line, with their
// count and the properties they break. Paths are padded by display width.
func (s *Styles) FormatBreakdown(report *analysis.Report) string {
	if !report.HasViolations() {
		return ""
	}

	files := report.ByFile[:min(len(report.ByFile), breakdownLimit)]
	width := 0
	for _, file := range files {
		width = max(width, runewidth.StringWidth(file.Path))
	}

	var builder strings.Builder
	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Files"))
	builder.WriteString("\n")

	for _, file := range files {
		properties := make([]string, 0, len(file.Properties))
		for _, property := range file.Properties {
			properties = append(properties, string(property))
		}
		fmt.Fprintf(&builder, "  %s  %s  %s\n",
			s.FilePath.Render(runewidth.FillRight(file.Path, width)),
			s.Error.Render(fmt.Sprintf("%3d", file.Violations)),
			s.Property.Render(strings.Join(properties, ", ")),
		)
	}

	if hidden := len(report.ByFile) - len(files); hidden > 0 {
		builder.WriteString(s.Dim.Render(fmt.Sprintf("  ... and %d more %s", hidden, plural(hidden, "file", "files"))))
		builder.WriteString("\n")
	}

	return builder.String()
}
