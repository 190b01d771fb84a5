package strip

import "strings"

// Mask marks each byte of a line: true for marker bytes, false for visible
// text. Markers are always ASCII, so a multi-byte rune is never split.
type Mask []bool

// Visible returns the bytes of line not marked as markers.
// line must be the string the mask was computed for.
func (m Mask) Visible(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for i := range len(m) {
		if !m[i] {
			b.WriteByte(line[i])
		}
	}
	return b.String()
}

// VisibleCount returns the number of visible bytes.
func (m Mask) VisibleCount() int {
	return m.VisibleBefore(len(m))
}

// VisibleBefore returns the number of visible bytes in [0, offset).
func (m Mask) VisibleBefore(offset int) int {
	offset = min(max(offset, 0), len(m))
	count := 0
	for _, hidden := range m[:offset] {
		if !hidden {
			count++
		}
	}
	return count
}

// IsMarker reports whether the byte at offset is part of a marker.
func (m Mask) IsMarker(offset int) bool {
	return offset >= 0 && offset < len(m) && m[offset]
}
