package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover finds Markdown files matching opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	walker := &walker{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		excludes:   excludes,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := walker.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}

		// Explicitly named files only need the right extension.
		if walker.hasExtension(absPath) {
			walker.add(absPath)
		}
	}

	slices.Sort(walker.files)
	return walker.files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// excludeGlob is a compiled ignore pattern.
type excludeGlob struct {
	pattern string
	glob    glob.Glob

	// baseOnly patterns have no separator and also match the file name alone.
	baseOnly bool
}

// compileGlobs compiles ignore patterns with '/' as the separator, so "*"
// stays within one path segment and "**" crosses segments.
func compileGlobs(patterns []string) ([]excludeGlob, error) {
	compiled := make([]excludeGlob, 0, len(patterns))
	for _, pattern := range patterns {
		normalized := filepath.ToSlash(strings.TrimSpace(pattern))
		if normalized == "" {
			continue
		}
		g, err := glob.Compile(normalized, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, excludeGlob{
			pattern:  normalized,
			glob:     g,
			baseOnly: !strings.Contains(normalized, "/"),
		})
	}
	return compiled, nil
}

// ValidateGlob reports whether pattern is a usable ignore pattern.
func ValidateGlob(pattern string) error {
	_, err := compileGlobs([]string{pattern})
	return err
}

// matches reports whether relPath (slash separated) is excluded. Directories
// also match patterns written for their contents, such as "vendor/**".
func (g excludeGlob) matches(relPath string, isDir bool) bool {
	if g.glob.Match(relPath) {
		return true
	}
	if isDir && g.glob.Match(relPath+"/") {
		return true
	}
	return g.baseOnly && g.glob.Match(filepath.Base(relPath))
}

// walker collects Markdown files below one or more roots.
type walker struct {
	workDir    string
	extensions []string
	excludes   []excludeGlob
	follow     bool
	seen       map[string]struct{}
	files      []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) hasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(w.extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

func (w *walker) excluded(path string, isDir bool) bool {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)
	return slices.ContainsFunc(w.excludes, func(g excludeGlob) bool {
		return g.matches(relPath, isDir)
	})
}

// walk visits root recursively. Hidden entries are skipped, as are
// directory symlinks unless following is enabled.
func (w *walker) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && (strings.HasPrefix(entry.Name(), ".") || w.excluded(path, true)) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			if target.IsDir() {
				if !w.follow || w.excluded(path, true) {
					return nil
				}
				realPath, err := filepath.EvalSymlinks(path)
				if err != nil {
					return nil //nolint:nilerr // Unresolvable symlinks are skipped.
				}
				return w.walk(ctx, realPath)
			}
		}

		if w.hasExtension(path) && !w.excluded(path, false) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}
