package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/mdsplit/pkg/check"
)

// sourceIndent aligns source context under the violation line.
const sourceIndent = "        "

// FormatViolation formats a single violation for terminal output.
func (s *Styles) FormatViolation(violation check.Violation, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(violation.Path),
		violation.Line,
		violation.Column,
	)

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.Error.Render("violation"),
		s.Message.Render(violation.Message),
		s.Property.Render("("+string(violation.Property)+")"),
	)

	if showContext && violation.Content != "" {
		builder.WriteString(s.FormatSourceContext(violation.Content, violation.Column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret under the given
// 1-based byte column. The caret is placed by display width so wide runes
// keep it aligned.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	builder.WriteString(sourceIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		offset := min(column-1, len(line))
		for offset > 0 && offset < len(line) && !utf8.RuneStart(line[offset]) {
			offset--
		}
		padding := sourceIndent + strings.Repeat(" ", runewidth.StringWidth(line[:offset]))
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, violationCount int) string {
	header := s.FilePath.Render(path)
	if violationCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", violationCount, plural(violationCount, "violation", "violations")))
	}
	return header
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
