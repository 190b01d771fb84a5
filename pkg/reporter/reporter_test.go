package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdsplit/pkg/analysis"
	"github.com/yaklabco/mdsplit/pkg/check"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

func sampleResult(root string) *runner.Result {
	violation := check.Violation{
		Path:     filepath.Join(root, "docs", "bad.md"),
		Line:     3,
		Column:   3,
		Property: check.PropertyPreserve,
		Message:  `plain split gives "ab" | "- c"`,
		Content:  "ab- c",
	}
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:   filepath.Join(root, "docs", "bad.md"),
				Result: &check.FileResult{LinesChecked: 4, Violations: []check.Violation{violation}},
			},
			{
				Path:   filepath.Join(root, "good.md"),
				Result: &check.FileResult{LinesChecked: 2},
			},
			{
				Path:  filepath.Join(root, "locked.md"),
				Error: errors.New("read file: permission denied"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:      3,
			FilesProcessed:       2,
			FilesErrored:         1,
			FilesWithIssues:      1,
			LinesChecked:         6,
			Violations:           1,
			ViolationsByProperty: map[check.Property]int{check.PropertyPreserve: 1},
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "yaml", input: "yaml", want: reporter.FormatYAML},
		{name: "yml alias", input: "yml", want: reporter.FormatYAML},
		{name: "unknown format", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	for _, format := range []reporter.Format{"", reporter.FormatText, reporter.FormatJSON, reporter.FormatYAML} {
		rep, err := reporter.New(reporter.Options{Writer: &buf, Format: format})
		require.NoError(t, err)
		assert.NotNil(t, rep)
	}

	_, err := reporter.New(reporter.Options{Writer: &buf, Format: "sarif"})
	require.Error(t, err)
}

func TestTextReporter_EmptyResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestTextReporter_WithViolations(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  root,
	})

	count, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	out := buf.String()
	badPath := filepath.Join("docs", "bad.md")
	assert.Contains(t, out, badPath+" (1 violation)\n")
	assert.Contains(t, out, badPath+":3:3  violation")
	assert.Contains(t, out, "(split-preserves-text)")
	assert.Contains(t, out, "        ab- c\n          ^\n")
	assert.Contains(t, out, "locked.md: error: read file: permission denied")
	assert.NotContains(t, out, "good.md")
	assert.True(t, strings.HasSuffix(out, "1 violation (1 split-preserves-text) in 1 file, 1 file could not be read\n"))
}

func TestTextReporter_DetailedSummary(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:          &buf,
		Color:           "never",
		DetailedSummary: true,
		WorkingDir:      root,
	})

	_, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Files\n  "+filepath.Join("docs", "bad.md")+"    1  split-preserves-text\n")
	assert.Contains(t, buf.String(), "Summary\n")
	assert.Contains(t, buf.String(), "Check failed")
}

func TestJSONReporter_DetailedSummary(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:          &buf,
		WorkingDir:      root,
		DetailedSummary: true,
		SortBy:          analysis.SortByAlpha,
	})

	_, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)

	var doc reporter.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.NotNil(t, doc.Analysis)
	require.Len(t, doc.Analysis.ByFile, 1)
	assert.Equal(t, filepath.Join("docs", "bad.md"), doc.Analysis.ByFile[0].Path)
	require.Len(t, doc.Analysis.ByProperty, 1)
	assert.Equal(t, check.PropertyPreserve, doc.Analysis.ByProperty[0].Property)
}

func TestJSONReporter_NoAnalysisByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	_, err := rep.Report(context.Background(), sampleResult(t.TempDir()))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"analysis"`)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: root})

	count, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var doc reporter.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "1.0.0", doc.Version)
	require.Len(t, doc.Files, 3)
	assert.Equal(t, filepath.Join("docs", "bad.md"), doc.Files[0].Path)
	require.Len(t, doc.Files[0].Violations, 1)
	assert.Equal(t, filepath.Join("docs", "bad.md"), doc.Files[0].Violations[0].Path)
	assert.Equal(t, check.PropertyPreserve, doc.Files[0].Violations[0].Property)
	assert.Empty(t, doc.Files[1].Violations)
	assert.Equal(t, "read file: permission denied", doc.Files[2].Error)
	assert.Equal(t, 1, doc.Summary.ViolationsByProperty[check.PropertyPreserve])

	assert.Contains(t, buf.String(), `"violations": []`, "clean files list an empty array")
}

func TestJSONReporter_NilResultAndCompact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"files":[]`)
}

func TestYAMLReporter(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewYAMLReporter(reporter.Options{Writer: &buf, WorkingDir: root})

	count, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var doc reporter.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Files, 3)
	assert.Equal(t, 4, doc.Files[0].LinesChecked)
	assert.Equal(t, "ab- c", doc.Files[0].Violations[0].Content)
	assert.Equal(t, 6, doc.Summary.LinesChecked)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	value := map[string]int{"offset": 4}

	var jsonBuf bytes.Buffer
	require.NoError(t, reporter.Encode(&jsonBuf, reporter.FormatJSON, value))
	assert.JSONEq(t, `{"offset": 4}`, jsonBuf.String())

	var yamlBuf bytes.Buffer
	require.NoError(t, reporter.Encode(&yamlBuf, reporter.FormatYAML, value))
	assert.YAMLEq(t, "offset: 4\n", yamlBuf.String())

	require.Error(t, reporter.Encode(&bytes.Buffer{}, reporter.FormatText, value))
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.Equal(t, analysis.SortByCount, opts.SortBy)
}
