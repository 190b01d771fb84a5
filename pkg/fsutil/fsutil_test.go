package fsutil_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdsplit/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("# Title\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "# Title\n" {
			t.Errorf("content = %q, want %q", got, "# Title\n")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := fsutil.ReadFile(ctx, "any.md")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	if err := fsutil.WriteAtomic(context.Background(), path, []byte("a: 1\n"), 0); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	if err := fsutil.WriteAtomic(context.Background(), path, []byte("a: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "a: 2\n" {
		t.Errorf("content = %q, want %q", got, "a: 2\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %o, want %o", info.Mode().Perm(), 0o600)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("found %d entries, temp file left behind", len(entries))
	}
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "config.yml")
	if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWriteNew(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".mdsplit.yml")
	ctx := context.Background()

	if err := fsutil.WriteNew(ctx, path, []byte("first"), 0, false); err != nil {
		t.Fatalf("WriteNew() error = %v", err)
	}
	if err := fsutil.WriteNew(ctx, path, []byte("second"), 0, false); err == nil {
		t.Error("expected WriteNew to refuse overwriting")
	}
	if err := fsutil.WriteNew(ctx, path, []byte("third"), 0, true); err != nil {
		t.Fatalf("WriteNew(overwrite) error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "third" {
		t.Errorf("content = %q, want %q", got, "third")
	}
	if !fsutil.Exists(path) {
		t.Error("Exists() = false for written file")
	}
}
