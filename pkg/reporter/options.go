package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/mdsplit/pkg/analysis"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext includes the offending line under each violation.
	ShowContext bool

	// ShowSummary displays a one-line summary after results.
	ShowSummary bool

	// DetailedSummary replaces the one-line summary with a summary block
	// and a per-file breakdown.
	DetailedSummary bool

	// SortBy orders the per-file breakdown of a detailed summary.
	SortBy analysis.SortField

	// Compact uses minified output where applicable.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
		SortBy:      analysis.SortByCount,
	}
}
