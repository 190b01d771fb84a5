package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/split"
	"github.com/yaklabco/mdsplit/pkg/strip"
)

// cursorGlyph marks the cursor inside rendered text.
const cursorGlyph = "|"

// HighlightMarkers renders line with marker bytes in the Marker style.
// mask must have been computed for line.
func (s *Styles) HighlightMarkers(line string, mask strip.Mask) string {
	if len(mask) != len(line) {
		return line
	}

	var builder strings.Builder
	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && mask[i] == mask[start] {
			continue
		}
		run := line[start:i]
		if mask[start] {
			builder.WriteString(s.Marker.Render(run))
		} else {
			builder.WriteString(run)
		}
		start = i
	}
	return builder.String()
}

// MarkCursor inserts a cursor glyph at the byte offset of line.
func (s *Styles) MarkCursor(line string, offset int) string {
	offset = min(max(offset, 0), len(line))
	return line[:offset] + s.Cursor.Render(cursorGlyph) + line[offset:]
}

// FormatSplit renders a split result as two labelled lines with the cursor
// shown on the second.
func (s *Styles) FormatSplit(result split.Result) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %s\n", s.Label.Render("before:"), result.Before)
	fmt.Fprintf(&builder, "%s %s\n", s.Label.Render("after: "), s.MarkCursor(result.After, result.CursorOffset))
	fmt.Fprintf(&builder, "%s\n", s.Dim.Render(fmt.Sprintf("case %s, cursor %d", result.Case, result.CursorOffset)))
	return builder.String()
}
