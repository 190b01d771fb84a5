// Package strip removes markdown syntax markers from a single line, producing
// the text the user sees in view mode.
package strip

import (
	"strings"

	"github.com/yaklabco/mdsplit/pkg/syntax"
)

// Stripper removes markers recognised by its pattern table.
// A Stripper holds no mutable state and is safe for concurrent use.
type Stripper struct {
	table *syntax.Table
}

//nolint:gochecknoglobals // Immutable default shared by package-level helpers.
var defaultStripper = New(syntax.DefaultTable())

// New creates a Stripper for the given table. A nil table means the default.
func New(table *syntax.Table) *Stripper {
	if table == nil {
		table = syntax.DefaultTable()
	}
	return &Stripper{table: table}
}

// Default returns the Stripper backed by the default table.
func Default() *Stripper {
	return defaultStripper
}

// Table returns the pattern table used by the Stripper.
func (s *Stripper) Table() *syntax.Table {
	return s.table
}

// Strip returns line with every recognised marker removed.
// Unterminated markers are kept literally.
func (s *Stripper) Strip(line string) string {
	return s.Mask(line).Visible(line)
}

// literalByte stands in for frozen code interior bytes when the visible text
// is rescanned. It is neither a marker nor a word character.
const literalByte = 0

// Mask classifies every byte of line as visible text or marker.
//
// Markers are removed in passes: each pass scans the text still visible,
// hides its prefix and wrapper markers, and passes repeat until one hides
// nothing. The interior of an inline code span is frozen once matched: later
// passes see literalByte in its place, so markers inside code stay visible.
func (s *Stripper) Mask(line string) Mask {
	hidden, _ := s.mask(line)
	return hidden
}

// HasLiteral reports whether line holds an inline code span with a non-empty
// interior. Stripping such a line exposes the interior as ordinary text, so
// Strip is idempotent only on lines without one.
func (s *Stripper) HasLiteral(line string) bool {
	_, frozen := s.mask(line)
	for _, isFrozen := range frozen {
		if isFrozen {
			return true
		}
	}
	return false
}

func (s *Stripper) mask(line string) (Mask, []bool) {
	hidden := make(Mask, len(line))
	frozen := make([]bool, len(line))
	positions := make([]int, 0, len(line))
	var visible strings.Builder

	for {
		positions = positions[:0]
		visible.Reset()
		for i := range len(line) {
			if hidden[i] {
				continue
			}
			positions = append(positions, i)
			if frozen[i] {
				visible.WriteByte(literalByte)
			} else {
				visible.WriteByte(line[i])
			}
		}

		layout := s.table.Scan(visible.String())
		if layout.Empty() {
			return hidden, frozen
		}

		for _, marker := range layout.Markers() {
			for i := marker.Start; i < marker.End; i++ {
				hidden[positions[i]] = true
			}
		}
		for _, span := range layout.Spans {
			if span.Pattern.Kind != syntax.KindInlineCode {
				continue
			}
			for i := span.OpenEnd; i < span.CloseStart; i++ {
				frozen[positions[i]] = true
			}
		}
	}
}

// PrefixEnd returns the byte length of the line prefix, or 0 if none.
func (s *Stripper) PrefixEnd(line string) int {
	return s.table.Scan(line).Prefix.End
}

// Strip removes markers from line using the default table.
func Strip(line string) string {
	return defaultStripper.Strip(line)
}
