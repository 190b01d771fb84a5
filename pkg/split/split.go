// Package split divides one line of markdown into two at a cursor offset,
// closing and reopening inline formatting so both lines stay valid.
package split

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdsplit/pkg/syntax"
)

// Case identifies the rule that produced a Result.
type Case string

const (
	// CasePlain is a literal split at the offset.
	CasePlain Case = "plain"

	// CasePrefix means the offset was inside the line prefix.
	CasePrefix Case = "prefix"

	// CaseOpeningMarker means the offset was inside an opening marker.
	CaseOpeningMarker Case = "opening-marker"

	// CaseClosingMarker means the offset was inside a closing marker.
	CaseClosingMarker Case = "closing-marker"

	// CaseInterior means the offset was inside formatted text.
	CaseInterior Case = "interior"
)

// Result is the outcome of splitting one line.
type Result struct {
	// Before is the content of the first line.
	Before string `json:"before" yaml:"before"`

	// After is the content of the second line.
	After string `json:"after" yaml:"after"`

	// CursorOffset is where the cursor rests in After.
	// Always within [0, len(After)].
	CursorOffset int `json:"cursor" yaml:"cursor"`

	// Case is the rule that produced this result.
	Case Case `json:"case" yaml:"case"`
}

// Splitter splits lines using the markers of its pattern table.
// A Splitter is safe for concurrent use.
type Splitter struct {
	table *syntax.Table
	stub  StubPlacement
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithStubPlacement sets which line receives the empty stub when the cursor
// sits inside a prefix or an opening marker.
func WithStubPlacement(placement StubPlacement) Option {
	return func(s *Splitter) {
		if placement.IsValid() {
			s.stub = placement
		}
	}
}

//nolint:gochecknoglobals // Immutable default shared by the package-level Split.
var defaultSplitter = New(nil)

// New creates a Splitter. A nil table means the default table.
func New(table *syntax.Table, opts ...Option) *Splitter {
	if table == nil {
		table = syntax.DefaultTable()
	}
	splitter := &Splitter{table: table, stub: StubAbove}
	for _, opt := range opts {
		opt(splitter)
	}
	return splitter
}

// Table returns the pattern table used by the splitter.
func (s *Splitter) Table() *syntax.Table {
	return s.table
}

// StubPlacement returns the configured stub placement.
func (s *Splitter) StubPlacement() StubPlacement {
	return s.stub
}

// Split divides content at offset. Offsets outside [0, len(content)] are
// clamped and offsets inside a multi-byte rune move to its start. Split
// never panics; input it does not understand is split literally.
func (s *Splitter) Split(content string, offset int) Result {
	offset = clampOffset(content, offset)
	if offset == 0 || offset == len(content) {
		return plain(content, offset)
	}

	layout := s.table.Scan(content)

	if prefix := layout.Prefix; prefix.Present() && offset <= prefix.End {
		return s.stubResult(content, content[:prefix.End], prefix.End, prefix.End, CasePrefix)
	}

	chain := layout.Enclosing(offset)
	if len(chain) == 0 {
		return plain(content, offset)
	}

	// Marker stubs are the bare empty pair of the innermost span.
	inner := chain[len(chain)-1]
	stub := inner.Pattern.Open + inner.Pattern.Close
	switch {
	case inner.InOpen(offset):
		return s.stubResult(content, stub, len(inner.Pattern.Open), inner.OpenEnd, CaseOpeningMarker)
	case inner.InClose(offset):
		return Result{
			Before:       content,
			After:        stub,
			CursorOffset: len(inner.Pattern.Open),
			Case:         CaseClosingMarker,
		}
	default:
		return splitInterior(content, offset, chain)
	}
}

// stubResult places the stub and the untouched content according to the
// configured placement. stubCursor is the cursor within the stub and
// contentCursor the cursor within content.
func (s *Splitter) stubResult(content, stub string, stubCursor, contentCursor int, kind Case) Result {
	if s.stub == StubBelow {
		return Result{Before: content, After: stub, CursorOffset: stubCursor, Case: kind}
	}
	return Result{Before: stub, After: content, CursorOffset: contentCursor, Case: kind}
}

// splitInterior closes every enclosing span at the end of Before, innermost
// first, and reopens them at the start of After, outermost first. A span
// whose part on one side would be empty is dropped from that side instead of
// leaving an empty pair.
func splitInterior(content string, offset int, chain []syntax.Span) Result {
	beforeEnd, closed := offset, len(chain)
	for closed > 0 && chain[closed-1].OpenEnd == beforeEnd {
		beforeEnd = chain[closed-1].OpenStart
		closed--
	}

	afterStart, reopened := offset, len(chain)
	for reopened > 0 && chain[reopened-1].CloseStart == afterStart {
		afterStart = chain[reopened-1].CloseEnd
		reopened--
	}

	var before strings.Builder
	before.WriteString(content[:beforeEnd])
	for i := closed - 1; i >= 0; i-- {
		before.WriteString(chain[i].Pattern.Close)
	}

	var after strings.Builder
	for _, span := range chain[:reopened] {
		after.WriteString(span.Pattern.Open)
	}
	cursor := after.Len()
	after.WriteString(content[afterStart:])

	return Result{
		Before:       before.String(),
		After:        after.String(),
		CursorOffset: cursor,
		Case:         CaseInterior,
	}
}

func plain(content string, offset int) Result {
	return Result{
		Before: content[:offset],
		After:  content[offset:],
		Case:   CasePlain,
	}
}

func clampOffset(content string, offset int) int {
	offset = min(max(offset, 0), len(content))
	for offset > 0 && offset < len(content) && !utf8.RuneStart(content[offset]) {
		offset--
	}
	return offset
}

// Split divides content at offset using the default table and placement.
func Split(content string, offset int) Result {
	return defaultSplitter.Split(content, offset)
}
