package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/check"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 violations (2 split-preserves-text, 1 split-cursor) in 2 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.Violations == 0 {
		parts = append(parts, s.Success.Render("No violations found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s, %d %s checked)",
				stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"),
				stats.LinesChecked, plural(stats.LinesChecked, "line", "lines"))))
	} else {
		var byProperty []string
		for _, property := range check.Properties() {
			if n := stats.ViolationsByProperty[property]; n > 0 {
				byProperty = append(byProperty, s.Error.Render(fmt.Sprintf("%d %s", n, property)))
			}
		}
		parts = append(parts, fmt.Sprintf("%d %s (%s) in %d %s",
			stats.Violations, plural(stats.Violations, "violation", "violations"),
			strings.Join(byProperty, ", "),
			stats.FilesWithIssues, plural(stats.FilesWithIssues, "file", "files")))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s could not be read",
			stats.FilesErrored, plural(stats.FilesErrored, "file", "files"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " + s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " + s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:  " + s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}
	builder.WriteString("  Lines checked:     " + s.SummaryValue.Render(strconv.Itoa(stats.LinesChecked)) + "\n")
	if stats.LinesSkipped > 0 {
		builder.WriteString("  Lines skipped:     " + s.Warning.Render(strconv.Itoa(stats.LinesSkipped)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Violations:        " + s.SummaryValue.Render(strconv.Itoa(stats.Violations)) + "\n")
	for _, property := range check.Properties() {
		if n := stats.ViolationsByProperty[property]; n > 0 {
			fmt.Fprintf(&builder, "    %-24s %s\n", string(property)+":", s.Error.Render(strconv.Itoa(n)))
		}
	}

	builder.WriteString("\n")
	if stats.Violations > 0 || stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Check failed"))
	} else {
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
