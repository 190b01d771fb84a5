package config

import "fmt"

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a flag or config value into an OutputFormat.
// Empty values fall back to text.
func ParseOutputFormat(value string) (OutputFormat, error) {
	if value == "" {
		return FormatText, nil
	}
	format := OutputFormat(value)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", value)
	}
	return format, nil
}
