// Package position maps cursor offsets between the view text of a line
// (markdown hidden) and its edit text (markdown visible).
//
// Offsets are byte offsets into Go strings. Use UTF16ToByte and ByteToUTF16
// at the boundary with hosts that count UTF-16 code units.
package position

import (
	"unicode/utf8"

	"github.com/yaklabco/mdsplit/pkg/strip"
)

// Mapper converts offsets using the markers its Stripper recognises.
// A Mapper is safe for concurrent use.
type Mapper struct {
	stripper *strip.Stripper
}

//nolint:gochecknoglobals // Immutable default shared by package-level helpers.
var defaultMapper = New(strip.Default())

// New creates a Mapper. A nil stripper means the default.
func New(stripper *strip.Stripper) *Mapper {
	if stripper == nil {
		stripper = strip.Default()
	}
	return &Mapper{stripper: stripper}
}

// Default returns the Mapper backed by the default table.
func Default() *Mapper {
	return defaultMapper
}

// ViewToEdit returns the edit-text offset corresponding to viewOffset in
// viewText. viewText is expected to equal Strip(editText); when it does not,
// the offset is clamped to what editText can represent.
//
// The result is the leftmost edit position after the line prefix that has
// viewOffset visible bytes before it, so a cursor at the end of formatted
// text lands before the closing markers.
func (m *Mapper) ViewToEdit(viewOffset int, viewText, editText string) int {
	mask := m.stripper.Mask(editText)

	target := clamp(viewOffset, 0, min(len(viewText), mask.VisibleCount()))
	target = runeStart(viewText, target)

	edit := m.stripper.PrefixEnd(editText)
	seen := 0
	for seen < target && edit < len(editText) {
		if !mask.IsMarker(edit) {
			seen++
		}
		edit++
	}
	return edit
}

// EditToView returns the view offset corresponding to editOffset in
// editText. An offset inside a marker maps to the view boundary the marker
// sits on.
func (m *Mapper) EditToView(editOffset int, editText string) int {
	edit := runeStart(editText, clamp(editOffset, 0, len(editText)))
	return m.stripper.Mask(editText).VisibleBefore(edit)
}

// ViewToEdit maps a view offset using the default table.
func ViewToEdit(viewOffset int, viewText, editText string) int {
	return defaultMapper.ViewToEdit(viewOffset, viewText, editText)
}

// EditToView maps an edit offset using the default table.
func EditToView(editOffset int, editText string) int {
	return defaultMapper.EditToView(editOffset, editText)
}

// MapViewPositionToEditPosition is the editor-facing name of ViewToEdit.
func MapViewPositionToEditPosition(viewOffset int, viewText, editText string) int {
	return ViewToEdit(viewOffset, viewText, editText)
}

// MapEditPositionToViewPosition is the editor-facing name of EditToView.
func MapEditPositionToViewPosition(editOffset int, editText string) int {
	return EditToView(editOffset, editText)
}

func clamp(value, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(value, lo), hi)
}

// runeStart moves offset back to the first byte of the rune containing it.
func runeStart(s string, offset int) int {
	for offset > 0 && offset < len(s) && !utf8.RuneStart(s[offset]) {
		offset--
	}
	return offset
}
