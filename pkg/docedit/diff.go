package docedit

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around a change.
const contextLines = 3

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineRemove
)

// DiffLine is one line of a hunk, without its diff prefix.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// Hunk is a contiguous region of change with surrounding context.
type Hunk struct {
	OriginalStart, OriginalCount int
	ModifiedStart, ModifiedCount int
	Lines                        []DiffLine
}

// Diff is a unified diff between two versions of a document.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// GenerateDiff compares original and modified line by line. Lines shared at
// the start and end are kept as context; everything between them forms a
// single hunk. It returns nil when the contents are equal.
func GenerateDiff(path string, original, modified []byte) *Diff {
	orig := splitLines(original)
	mod := splitLines(modified)

	prefix := 0
	for prefix < len(orig) && prefix < len(mod) && orig[prefix] == mod[prefix] {
		prefix++
	}
	if prefix == len(orig) && prefix == len(mod) {
		return nil
	}

	suffix := 0
	for suffix < len(orig)-prefix && suffix < len(mod)-prefix &&
		orig[len(orig)-1-suffix] == mod[len(mod)-1-suffix] {
		suffix++
	}

	removed := orig[prefix : len(orig)-suffix]
	added := mod[prefix : len(mod)-suffix]
	leading := orig[max(prefix-contextLines, 0):prefix]
	trailingStart := len(orig) - suffix
	trailing := orig[trailingStart:min(trailingStart+contextLines, len(orig))]

	hunk := Hunk{
		OriginalStart: prefix - len(leading) + 1,
		OriginalCount: len(leading) + len(removed) + len(trailing),
		ModifiedStart: prefix - len(leading) + 1,
		ModifiedCount: len(leading) + len(added) + len(trailing),
	}
	// An empty side is addressed by the line before it.
	if hunk.OriginalCount == 0 {
		hunk.OriginalStart--
	}
	if hunk.ModifiedCount == 0 {
		hunk.ModifiedStart--
	}

	appendLines := func(kind DiffLineKind, contents []string) {
		for _, content := range contents {
			hunk.Lines = append(hunk.Lines, DiffLine{Kind: kind, Content: content})
		}
	}
	appendLines(DiffLineContext, leading)
	appendLines(DiffLineRemove, removed)
	appendLines(DiffLineAdd, added)
	appendLines(DiffLineContext, trailing)

	return &Diff{
		Path:      path,
		Hunks:     []Hunk{hunk},
		Additions: len(added),
		Deletions: len(removed),
	}
}

// HasChanges reports whether the diff contains any hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n+++ b/%s\n", path, path)
	for _, hunk := range d.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')
		for _, line := range hunk.Lines {
			builder.WriteString(line.Kind.Prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// Header returns the "@@ -a,b +c,d @@" line of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

// Prefix returns the one-character marker of the line kind.
func (k DiffLineKind) Prefix() string {
	switch k {
	case DiffLineAdd:
		return "+"
	case DiffLineRemove:
		return "-"
	default:
		return " "
	}
}

// splitLines splits content into lines, dropping the empty string after a
// final newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
