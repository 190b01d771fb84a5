package pretty

import (
	"strings"

	"github.com/yaklabco/mdsplit/pkg/docedit"
)

// FormatDiff renders a unified diff with headers, hunks and changed lines styled.
func (s *Styles) FormatDiff(diff *docedit.Diff) string {
	if !diff.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(diff.Path, "/")

	var builder strings.Builder
	writeLine := func(style func(...string) string, text string) {
		builder.WriteString(style(text))
		builder.WriteByte('\n')
	}

	writeLine(s.DiffHeader.Render, "--- a/"+path)
	writeLine(s.DiffHeader.Render, "+++ b/"+path)
	for _, hunk := range diff.Hunks {
		writeLine(s.DiffHunk.Render, hunk.Header())
		for _, line := range hunk.Lines {
			style := s.DiffContext.Render
			switch line.Kind {
			case docedit.DiffLineAdd:
				style = s.DiffAdd.Render
			case docedit.DiffLineRemove:
				style = s.DiffRemove.Render
			}
			writeLine(style, line.Kind.Prefix()+line.Content)
		}
	}
	return builder.String()
}
