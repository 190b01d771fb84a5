package position

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16ToByte converts an offset counted in UTF-16 code units into a byte
// offset in s. Offsets past the end clamp to len(s); an offset that falls
// between the two halves of a surrogate pair maps to the start of the rune.
func UTF16ToByte(s string, units int) int {
	if units <= 0 {
		return 0
	}
	seen := 0
	for idx, r := range s {
		width := utf16.RuneLen(r)
		if width < 0 {
			// Invalid UTF-8 decodes to RuneError, which takes one unit.
			width = 1
		}
		if seen+width > units {
			return idx
		}
		seen += width
	}
	return len(s)
}

// ByteToUTF16 converts a byte offset in s into UTF-16 code units. Offsets
// inside a multi-byte rune count only the runes before it.
func ByteToUTF16(s string, offset int) int {
	offset = clamp(offset, 0, len(s))
	units := 0
	for pos := 0; pos < offset; {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if pos+size > offset {
			break
		}
		width := utf16.RuneLen(r)
		if width < 0 {
			width = 1
		}
		units += width
		pos += size
	}
	return units
}
