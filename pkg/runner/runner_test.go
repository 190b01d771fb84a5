package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsplit/pkg/check"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

func TestRunner_NoFiles(t *testing.T) {
	t.Parallel()

	r := runner.New(check.New(nil))
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasViolations())
	assert.False(t, result.HasErrors())
}

func TestRunner_CleanFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md": "# Title\n\nSome **bold** and *italic* text.\n",
		"b.md": "- item with `code`\n- another ~~struck~~ item\n",
	})

	r := runner.New(check.New(nil))
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Zero(t, result.Stats.FilesWithIssues)
	assert.Zero(t, result.Stats.Violations)
	assert.Equal(t, 4, result.Stats.LinesChecked)
	assert.False(t, result.HasViolations())
}

func TestRunner_Violations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"clean.md": "plain text\n",
		"issue.md": "ab- c\n",
	})

	r := runner.New(check.New(nil))
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.True(t, result.HasViolations())
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.Violations)
	assert.Equal(t, 1, result.Stats.ViolationsByProperty[check.PropertyPreserve])

	require.Len(t, result.Files, 2)
	issue := result.Files[1]
	assert.Equal(t, filepath.Join(dir, "issue.md"), issue.Path)
	require.NotNil(t, issue.Result)
	require.Len(t, issue.Result.Violations, 1)
	assert.Equal(t, 1, issue.Result.Violations[0].Line)
}

func TestRunner_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{}
	for _, name := range []string{"e.md", "a.md", "d.md", "c.md", "b.md", "sub/f.md"} {
		files[name] = "*text* here\n"
	}
	writeFiles(t, dir, files)

	r := runner.New(check.New(nil))

	serial, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 4})
	require.NoError(t, err)

	require.Len(t, serial.Files, 6)
	require.Len(t, parallel.Files, 6)
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
	}
	assert.Equal(t, serial.Stats, parallel.Stats)
	assert.Equal(t, "a.md", filepath.Base(serial.Files[0].Path))
}

func TestRunner_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"keep.md":          "text\n",
		"vendor/broken.md": "ab- c\n",
	})

	r := runner.New(check.New(nil))
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.False(t, result.HasViolations())
}

func TestRunner_DiscoveryError(t *testing.T) {
	t.Parallel()

	r := runner.New(check.New(nil))
	_, err := r.Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"does-not-exist.md"},
	})
	require.Error(t, err)
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "text\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New(check.New(nil))
	_, err := r.Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasViolations())
	assert.False(t, result.HasErrors())
}
