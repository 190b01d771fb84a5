package runner

import "github.com/yaklabco/mdsplit/pkg/check"

// FileOutcome is the result of checking one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is nil when the file could not be checked.
	Result *check.FileResult

	// Error is set if the file could not be checked.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int `json:"files_discovered" yaml:"files_discovered"`
	FilesProcessed  int `json:"files_processed" yaml:"files_processed"`
	FilesErrored    int `json:"files_errored" yaml:"files_errored"`
	FilesWithIssues int `json:"files_with_issues" yaml:"files_with_issues"`

	LinesChecked int `json:"lines_checked" yaml:"lines_checked"`
	LinesSkipped int `json:"lines_skipped" yaml:"lines_skipped"`

	// Violations is the total number of violations across all files.
	Violations int `json:"violations" yaml:"violations"`

	// ViolationsByProperty maps property names to counts.
	ViolationsByProperty map[check.Property]int `json:"violations_by_property" yaml:"violations_by_property"`
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasViolations reports whether any violation was found.
func (r *Result) HasViolations() bool {
	if r == nil {
		return false
	}
	return r.Stats.Violations > 0
}

// HasErrors reports whether any file failed to be checked.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{
		ViolationsByProperty: make(map[check.Property]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.LinesChecked += outcome.Result.LinesChecked
	r.Stats.LinesSkipped += outcome.Result.LinesSkipped

	if len(outcome.Result.Violations) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.Violations += len(outcome.Result.Violations)
	for _, violation := range outcome.Result.Violations {
		r.Stats.ViolationsByProperty[violation.Property]++
	}
}
