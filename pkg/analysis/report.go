package analysis

import "github.com/yaklabco/mdsplit/pkg/check"

// Report holds pre-computed breakdowns of a check run.
type Report struct {
	ByFile     []FileAnalysis     `json:"by_file" yaml:"by_file"`
	ByProperty []PropertyAnalysis `json:"by_property" yaml:"by_property"`
}

// FileAnalysis aggregates the violations of one file.
type FileAnalysis struct {
	Path         string           `json:"path" yaml:"path"`
	Violations   int              `json:"violations" yaml:"violations"`
	LinesChecked int              `json:"lines_checked" yaml:"lines_checked"`
	Properties   []check.Property `json:"properties" yaml:"properties"`
}

// PropertyAnalysis aggregates the violations of one property across files.
type PropertyAnalysis struct {
	Property   check.Property `json:"property" yaml:"property"`
	Violations int            `json:"violations" yaml:"violations"`
	Files      []string       `json:"files" yaml:"files"`
}

// HasViolations returns true if any file has a violation.
func (r *Report) HasViolations() bool {
	return r != nil && len(r.ByFile) > 0
}
