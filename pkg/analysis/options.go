package analysis

import "fmt"

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by violation count, highest first.
	SortByCount SortField = "count"
	// SortByAlpha sorts by path or property name.
	SortByAlpha SortField = "alpha"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha:
		return true
	default:
		return false
	}
}

// ParseSortField parses a sort field, treating "" as SortByCount.
func ParseSortField(value string) (SortField, error) {
	if value == "" {
		return SortByCount, nil
	}
	field := SortField(value)
	if !field.IsValid() {
		return "", fmt.Errorf("unknown sort %q (expected count or alpha)", value)
	}
	return field, nil
}

// Options configures Analyze.
type Options struct {
	// SortBy orders ByFile and ByProperty.
	SortBy SortField

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{SortBy: SortByCount}
}
