package reporter

import (
	"github.com/yaklabco/mdsplit/pkg/analysis"
	"github.com/yaklabco/mdsplit/pkg/check"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

// documentVersion is bumped whenever Document changes shape.
const documentVersion = "1.0.0"

// Document is the structured form of a run shared by the JSON and YAML reporters.
type Document struct {
	Version string         `json:"version" yaml:"version"`
	Files   []FileDocument `json:"files" yaml:"files"`
	Summary runner.Stats   `json:"summary" yaml:"summary"`

	// Analysis is set for detailed summaries.
	Analysis *analysis.Report `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// FileDocument is one file's entry in a Document.
type FileDocument struct {
	Path         string            `json:"path" yaml:"path"`
	LinesChecked int               `json:"lines_checked" yaml:"lines_checked"`
	LinesSkipped int               `json:"lines_skipped,omitempty" yaml:"lines_skipped,omitempty"`
	Violations   []check.Violation `json:"violations" yaml:"violations"`
	Error        string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// BuildDocument converts a runner result into a Document. Paths are made
// relative to workDir when it is set.
func BuildDocument(result *runner.Result, workDir string) *Document {
	doc := &Document{
		Version: documentVersion,
		Files:   make([]FileDocument, 0),
	}
	if result == nil {
		return doc
	}

	doc.Summary = result.Stats
	doc.Files = make([]FileDocument, 0, len(result.Files))

	for _, file := range result.Files {
		path := displayPath(workDir, file.Path)
		entry := FileDocument{
			Path:       path,
			Violations: make([]check.Violation, 0),
		}

		if file.Error != nil {
			entry.Error = file.Error.Error()
		}

		if file.Result != nil {
			entry.LinesChecked = file.Result.LinesChecked
			entry.LinesSkipped = file.Result.LinesSkipped
			for _, violation := range file.Result.Violations {
				violation.Path = path
				entry.Violations = append(entry.Violations, violation)
			}
		}

		doc.Files = append(doc.Files, entry)
	}

	return doc
}

// buildDocument builds the Document for opts, adding the analysis when a
// detailed summary is requested.
func buildDocument(result *runner.Result, opts Options) *Document {
	doc := BuildDocument(result, opts.WorkingDir)
	if opts.DetailedSummary {
		doc.Analysis = analyze(result, opts)
	}
	return doc
}

func analyze(result *runner.Result, opts Options) *analysis.Report {
	return analysis.Analyze(result, analysis.Options{SortBy: opts.SortBy, WorkingDir: opts.WorkingDir})
}
