// Package docedit applies line splits to whole Markdown documents and
// renders the change as a unified diff.
package docedit

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
)

// TextEdit replaces the bytes [Start, End) of a document with NewText.
type TextEdit struct {
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	NewText string `json:"new_text" yaml:"new_text"`
}

// RangeError reports an edit that does not fit the document.
type RangeError struct {
	Edit   TextEdit
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("edit [%d, %d) out of range for %d bytes", e.Edit.Start, e.Edit.End, e.Length)
}

// ConflictError reports two edits whose ranges overlap.
type ConflictError struct {
	First, Second TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("edits [%d, %d) and [%d, %d) overlap",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Apply returns content with every edit applied. Edits may be given in any
// order but must not overlap. Two insertions at the same offset are applied
// in the order given.
func Apply(content []byte, edits []TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return content, nil
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b TextEdit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	delta := 0
	for i, edit := range sorted {
		if edit.Start < 0 || edit.End < edit.Start || edit.End > len(content) {
			return nil, &RangeError{Edit: edit, Length: len(content)}
		}
		if i > 0 && edit.Start < sorted[i-1].End {
			return nil, &ConflictError{First: sorted[i-1], Second: edit}
		}
		delta += len(edit.NewText) - (edit.End - edit.Start)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, edit := range sorted {
		out.Write(content[cursor:edit.Start])
		out.WriteString(edit.NewText)
		cursor = edit.End
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}
