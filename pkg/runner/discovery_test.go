package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsplit/pkg/runner"
)

// writeFiles creates each relative path under dir with the given content.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

// relPaths makes discovered paths relative to dir with forward slashes.
func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"readme.md": "# Test"})
	mdFile := filepath.Join(dir, "readme.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{mdFile},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{mdFile}, files)
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"readme.md":         "content",
		"docs/guide.md":     "content",
		"docs/api.markdown": "content",
		"src/main.go":       "content",
		"notes.txt":         "content",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/api.markdown", "docs/guide.md", "readme.md"}, relPaths(t, dir, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "", "b.MDX": "", "c.txt": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".mdx"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.MDX"}, relPaths(t, dir, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"readme.md":                 "",
		"CHANGELOG.md":              "",
		"vendor/lib/readme.md":      "",
		"docs/guide.md":             "",
		"docs/drafts/wip.md":        "",
		"node_modules/pkg/index.md": "",
	})

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "no patterns",
			patterns: nil,
			want: []string{
				"CHANGELOG.md", "docs/drafts/wip.md", "docs/guide.md",
				"node_modules/pkg/index.md", "readme.md", "vendor/lib/readme.md",
			},
		},
		{
			name:     "directory with double star",
			patterns: []string{"vendor/**", "node_modules/**"},
			want:     []string{"CHANGELOG.md", "docs/drafts/wip.md", "docs/guide.md", "readme.md"},
		},
		{
			name:     "base name pattern",
			patterns: []string{"CHANGELOG.md"},
			want: []string{
				"docs/drafts/wip.md", "docs/guide.md", "node_modules/pkg/index.md",
				"readme.md", "vendor/lib/readme.md",
			},
		},
		{
			name:     "nested double star",
			patterns: []string{"**/drafts/**", "vendor/**", "node_modules/**"},
			want:     []string{"CHANGELOG.md", "docs/guide.md", "readme.md"},
		},
		{
			name:     "single star stays in segment",
			patterns: []string{"docs/*.md"},
			want: []string{
				"CHANGELOG.md", "docs/drafts/wip.md", "node_modules/pkg/index.md",
				"readme.md", "vendor/lib/readme.md",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			files, err := runner.Discover(context.Background(), runner.Options{
				WorkingDir:   dir,
				ExcludeGlobs: testCase.patterns,
			})
			require.NoError(t, err)
			assert.Equal(t, testCase.want, relPaths(t, dir, files))
		})
	}
}

func TestDiscover_InvalidGlob(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   t.TempDir(),
		ExcludeGlobs: []string{"docs/[abc"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")

	require.Error(t, runner.ValidateGlob("docs/[abc"))
	require.NoError(t, runner.ValidateGlob("docs/**"))
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"visible.md":        "",
		".hidden.md":        "",
		".github/readme.md": "",
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.md"}, relPaths(t, dir, files))
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"docs/a.md": "", "docs/b.md": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"docs", "docs/a.md", "."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/a.md", "docs/b.md"}, relPaths(t, dir, files))
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	writeFiles(t, dir, map[string]string{"root.md": ""})
	writeFiles(t, outside, map[string]string{"linked.md": ""})

	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "root.md")}, files)

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(outside)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "root.md"), filepath.Join(resolved, "linked.md")}, files)
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".md", ".markdown"}, runner.DefaultExtensions())
}
