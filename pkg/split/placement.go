package split

import "fmt"

// StubPlacement selects which of the two lines keeps the line's identity
// when the cursor sits in front of all visible text (inside a prefix or an
// opening marker). The other line becomes a stub holding only markers.
type StubPlacement string

const (
	// StubAbove inserts the stub as the first line and keeps the content on
	// the second. This matches pressing Enter at the start of a line.
	StubAbove StubPlacement = "above"

	// StubBelow keeps the content on the first line and puts the stub on
	// the second.
	StubBelow StubPlacement = "below"
)

// IsValid returns true if the placement is known.
func (p StubPlacement) IsValid() bool {
	switch p {
	case StubAbove, StubBelow:
		return true
	default:
		return false
	}
}

// ParseStubPlacement converts a config or flag value into a StubPlacement.
// An empty value yields StubAbove.
func ParseStubPlacement(value string) (StubPlacement, error) {
	if value == "" {
		return StubAbove, nil
	}
	placement := StubPlacement(value)
	if !placement.IsValid() {
		return "", fmt.Errorf("invalid stub placement %q (expected above or below)", value)
	}
	return placement, nil
}
