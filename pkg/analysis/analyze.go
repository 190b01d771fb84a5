// Package analysis groups check violations by file and by property.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"

	"github.com/yaklabco/mdsplit/pkg/check"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

// Analyze builds a Report from a runner result. Files without violations
// are left out. A nil result gives an empty report.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		ByFile:     make([]FileAnalysis, 0),
		ByProperty: make([]PropertyAnalysis, 0),
	}
	if result == nil {
		return report
	}

	byProperty := make(map[check.Property]*PropertyAnalysis)
	for _, file := range result.Files {
		if file.Result == nil || len(file.Result.Violations) == 0 {
			continue
		}

		path := relativePath(file.Path, opts.WorkingDir)
		fileAnalysis := FileAnalysis{
			Path:         path,
			Violations:   len(file.Result.Violations),
			LinesChecked: file.Result.LinesChecked,
		}

		for _, violation := range file.Result.Violations {
			if !slices.Contains(fileAnalysis.Properties, violation.Property) {
				fileAnalysis.Properties = append(fileAnalysis.Properties, violation.Property)
			}

			entry, ok := byProperty[violation.Property]
			if !ok {
				entry = &PropertyAnalysis{Property: violation.Property}
				byProperty[violation.Property] = entry
			}
			entry.Violations++
			if !slices.Contains(entry.Files, path) {
				entry.Files = append(entry.Files, path)
			}
		}

		slices.Sort(fileAnalysis.Properties)
		report.ByFile = append(report.ByFile, fileAnalysis)
	}

	for _, entry := range byProperty {
		report.ByProperty = append(report.ByProperty, *entry)
	}

	sortFiles(report.ByFile, opts.SortBy)
	sortProperties(report.ByProperty, opts.SortBy)
	return report
}

func sortFiles(files []FileAnalysis, sortBy SortField) {
	slices.SortFunc(files, func(a, b FileAnalysis) int {
		if sortBy == SortByAlpha {
			return cmp.Compare(a.Path, b.Path)
		}
		return cmp.Or(cmp.Compare(b.Violations, a.Violations), cmp.Compare(a.Path, b.Path))
	})
}

func sortProperties(properties []PropertyAnalysis, sortBy SortField) {
	slices.SortFunc(properties, func(a, b PropertyAnalysis) int {
		if sortBy == SortByAlpha {
			return cmp.Compare(a.Property, b.Property)
		}
		return cmp.Or(cmp.Compare(b.Violations, a.Violations), cmp.Compare(a.Property, b.Property))
	})
}

// relativePath converts path to be relative to workDir when it lies inside it.
func relativePath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}
	return rel
}
