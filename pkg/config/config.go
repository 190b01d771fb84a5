// Package config defines core configuration types for mdsplit.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/yaklabco/mdsplit/pkg/split"
	"github.com/yaklabco/mdsplit/pkg/syntax"
)

// OutputFormat specifies the output format for command results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// SplitConfig controls the content splitter.
type SplitConfig struct {
	// Stub selects which line receives the marker-only stub: "above" or "below".
	Stub string `yaml:"stub"`
}

// SyntaxConfig controls the pattern table.
type SyntaxConfig struct {
	// Disable lists pattern kinds or wrapper markers to drop, e.g. "~" or "italic".
	Disable []string `yaml:"disable"`
}

// CheckConfig controls the check command.
type CheckConfig struct {
	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// MaxLineLength skips lines longer than this many bytes. 0 means no limit.
	MaxLineLength int `yaml:"max_line_length"`
}

// Config is the root configuration structure for mdsplit.
type Config struct {
	Split  SplitConfig  `yaml:"split"`
	Syntax SyntaxConfig `yaml:"syntax"`
	Check  CheckConfig  `yaml:"check"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Jobs specifies the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs,omitempty"`

	// CLI-level options (not persisted to config files).

	// Color is "auto", "always" or "never".
	Color string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Split: SplitConfig{
			Stub: string(split.StubAbove),
		},
		Format: FormatText,
		Jobs:   0,
		Color:  "auto",
	}
}

// Table builds the pattern table described by the configuration.
func (c *Config) Table() *syntax.Table {
	if c == nil || len(c.Syntax.Disable) == 0 {
		return syntax.DefaultTable()
	}
	return syntax.DefaultTable().Without(c.Syntax.Disable...)
}

// Splitter builds a splitter from the configured table and stub placement.
func (c *Config) Splitter() (*split.Splitter, error) {
	stub := ""
	if c != nil {
		stub = c.Split.Stub
	}
	placement, err := split.ParseStubPlacement(stub)
	if err != nil {
		return nil, fmt.Errorf("split.stub: %w", err)
	}
	return split.New(c.Table(), split.WithStubPlacement(placement)), nil
}
