// Package check verifies the stripper, position mapper and splitter against
// real markdown documents. Every prose line of a document is stripped, mapped
// at each view offset and split at each edit offset, and any broken
// guarantee is reported as a Violation.
package check

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/yuin/goldmark"

	"github.com/yaklabco/mdsplit/pkg/fsutil"
	"github.com/yaklabco/mdsplit/pkg/position"
	"github.com/yaklabco/mdsplit/pkg/split"
	"github.com/yaklabco/mdsplit/pkg/strip"
)

// Property names a guarantee checked on every line.
type Property string

const (
	// PropertyIdempotent: stripping the view text changes nothing.
	PropertyIdempotent Property = "strip-idempotent"

	// PropertyRoundTrip: view -> edit -> view returns the starting offset.
	PropertyRoundTrip Property = "position-round-trip"

	// PropertyPreserve: a split neither loses nor duplicates visible text.
	PropertyPreserve Property = "split-preserves-text"

	// PropertyCursor: the split cursor lies within the second line.
	PropertyCursor Property = "split-cursor"
)

// Properties returns every checked property in reporting order.
func Properties() []Property {
	return []Property{PropertyIdempotent, PropertyRoundTrip, PropertyPreserve, PropertyCursor}
}

// Violation is a broken guarantee on one line.
type Violation struct {
	// Path is the file the line came from. Empty for CheckLine.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Line is the 1-based line number. 0 for CheckLine.
	Line int `json:"line" yaml:"line"`

	// Column is the 1-based byte column of the offending edit offset.
	Column int `json:"column" yaml:"column"`

	// Property is the guarantee that failed.
	Property Property `json:"property" yaml:"property"`

	// Message describes the failure.
	Message string `json:"message" yaml:"message"`

	// Content is the line that failed.
	Content string `json:"content" yaml:"content"`
}

// FileResult is the outcome of checking one document.
type FileResult struct {
	Path string `json:"path" yaml:"path"`

	// LinesChecked counts the prose lines that were verified.
	LinesChecked int `json:"lines_checked" yaml:"lines_checked"`

	// LinesSkipped counts prose lines over the length limit.
	LinesSkipped int `json:"lines_skipped" yaml:"lines_skipped"`

	Violations []Violation `json:"violations" yaml:"violations"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxLineLength skips lines longer than n bytes. 0 disables the limit.
func WithMaxLineLength(n int) Option {
	return func(e *Engine) {
		e.maxLineLength = max(n, 0)
	}
}

// Engine checks lines with a given splitter and the matching stripper and mapper.
// An Engine is safe for concurrent use.
type Engine struct {
	splitter      *split.Splitter
	stripper      *strip.Stripper
	mapper        *position.Mapper
	md            goldmark.Markdown
	maxLineLength int
}

// New creates an Engine around splitter. A nil splitter means the default
// table with the stub above.
func New(splitter *split.Splitter, opts ...Option) *Engine {
	if splitter == nil {
		splitter = split.New(nil)
	}
	stripper := strip.New(splitter.Table())
	engine := &Engine{
		splitter: splitter,
		stripper: stripper,
		mapper:   position.New(stripper),
		md:       newMarkdown(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Lines returns the prose lines of a markdown document.
func (e *Engine) Lines(content []byte) []Source {
	return proseLines(e.md, content)
}

// CheckFile reads and checks the document at path.
func (e *Engine) CheckFile(ctx context.Context, path string) (*FileResult, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.CheckContent(ctx, path, content)
}

// CheckContent checks every prose line of content.
func (e *Engine) CheckContent(ctx context.Context, path string, content []byte) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check cancelled: %w", err)
	}

	result := &FileResult{Path: path}
	for _, source := range e.Lines(content) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("check cancelled: %w", err)
		}
		if e.maxLineLength > 0 && len(source.Text) > e.maxLineLength {
			result.LinesSkipped++
			continue
		}

		result.LinesChecked++
		for _, violation := range e.CheckLine(source.Text) {
			violation.Path = path
			violation.Line = source.Line
			result.Violations = append(result.Violations, violation)
		}
	}
	return result, nil
}

// CheckLine verifies a single line. At most one violation per property is
// reported.
func (e *Engine) CheckLine(line string) []Violation {
	var violations []Violation
	report := func(property Property, offset int, format string, args ...any) {
		violations = append(violations, Violation{
			Column:   offset + 1,
			Property: property,
			Message:  fmt.Sprintf(format, args...),
			Content:  line,
		})
	}

	view := e.stripper.Strip(line)
	// Code interiors are exposed as plain text, so a second strip may read them.
	if again := e.stripper.Strip(view); again != view && !e.stripper.HasLiteral(line) {
		report(PropertyIdempotent, 0, "stripping %q again gives %q", view, again)
	}

	for viewOffset := 0; viewOffset <= len(view); viewOffset++ {
		if viewOffset < len(view) && !utf8.RuneStart(view[viewOffset]) {
			continue
		}
		edit := e.mapper.ViewToEdit(viewOffset, view, line)
		if back := e.mapper.EditToView(edit, line); back != viewOffset {
			report(PropertyRoundTrip, edit, "view offset %d maps to edit offset %d and back to %d", viewOffset, edit, back)
			break
		}
	}

	preserved, cursorValid := true, true
	for offset := 1; offset < len(line) && (preserved || cursorValid); offset++ {
		if !utf8.RuneStart(line[offset]) {
			continue
		}
		result := e.splitter.Split(line, offset)

		if cursorValid && (result.CursorOffset < 0 || result.CursorOffset > len(result.After)) {
			cursorValid = false
			report(PropertyCursor, offset, "%s split puts the cursor at %d in %q", result.Case, result.CursorOffset, result.After)
		}
		if preserved && !e.preserves(line, view, result) {
			preserved = false
			report(PropertyPreserve, offset, "%s split gives %q | %q", result.Case, result.Before, result.After)
		}
	}

	return violations
}

// preserves reports whether result keeps the visible text of line. Stub
// results must keep the line intact on one side and only markers on the other.
func (e *Engine) preserves(line, view string, result split.Result) bool {
	switch result.Case {
	case split.CasePrefix, split.CaseOpeningMarker:
		stub, full := result.Before, result.After
		if e.splitter.StubPlacement() == split.StubBelow {
			stub, full = result.After, result.Before
		}
		return full == line && e.stripper.Strip(stub) == ""
	case split.CaseClosingMarker:
		return result.Before == line && e.stripper.Strip(result.After) == ""
	default:
		return e.stripper.Strip(result.Before)+e.stripper.Strip(result.After) == view
	}
}
