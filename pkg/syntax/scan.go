package syntax

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxDepth bounds wrapper nesting. Openers deeper than this stay literal.
const maxDepth = 16

// Range is a half-open byte range [Start, End) within a line.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains returns true if offset lies within [Start, End).
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Prefix is the line prefix found by Scan.
type Prefix struct {
	// Pattern is the matched prefix row. Zero when no prefix was found.
	Pattern Pattern

	// End is the byte length of the prefix marker. Zero when absent.
	End int
}

// Present returns true if the line has a prefix.
func (p Prefix) Present() bool {
	return p.End > 0
}

// Span is one matched wrapper pair.
type Span struct {
	Pattern Pattern

	OpenStart  int
	OpenEnd    int
	CloseStart int
	CloseEnd   int

	// Depth is 0 for top-level spans and grows by one per enclosing span.
	Depth int
}

// Open returns the range of the opening marker.
func (s Span) Open() Range {
	return Range{Start: s.OpenStart, End: s.OpenEnd}
}

// Close returns the range of the closing marker.
func (s Span) Close() Range {
	return Range{Start: s.CloseStart, End: s.CloseEnd}
}

// Interior returns the range between the markers.
func (s Span) Interior() Range {
	return Range{Start: s.OpenEnd, End: s.CloseStart}
}

// Encloses returns true if offset lies strictly between the span's outer
// boundaries.
func (s Span) Encloses(offset int) bool {
	return s.OpenStart < offset && offset < s.CloseEnd
}

// InOpen returns true if offset lies strictly inside the opening marker.
func (s Span) InOpen(offset int) bool {
	return s.OpenStart < offset && offset < s.OpenEnd
}

// InClose returns true if offset lies strictly inside the closing marker.
func (s Span) InClose(offset int) bool {
	return s.CloseStart < offset && offset < s.CloseEnd
}

// Layout is the syntax found on one line.
type Layout struct {
	Prefix Prefix

	// Spans are ordered by OpenStart. Two spans are either disjoint or one
	// is nested inside the other's interior.
	Spans []Span
}

// Empty returns true if the line carries no recognised syntax.
func (l Layout) Empty() bool {
	return !l.Prefix.Present() && len(l.Spans) == 0
}

// Markers returns every marker range on the line, ordered by start.
func (l Layout) Markers() []Range {
	markers := make([]Range, 0, 1+2*len(l.Spans))
	if l.Prefix.Present() {
		markers = append(markers, Range{Start: 0, End: l.Prefix.End})
	}
	for _, span := range l.Spans {
		markers = append(markers, span.Open(), span.Close())
	}
	slices.SortFunc(markers, func(a, b Range) int { return a.Start - b.Start })
	return markers
}

// Enclosing returns the spans that enclose offset, outermost first.
func (l Layout) Enclosing(offset int) []Span {
	var chain []Span
	for _, span := range l.Spans {
		if span.Encloses(offset) {
			chain = append(chain, span)
		}
	}
	return chain
}

// Scan locates the prefix and all wrapper spans on a single line.
func (t *Table) Scan(line string) Layout {
	var layout Layout
	if pattern, end, ok := t.matchPrefix(line); ok {
		layout.Prefix = Prefix{Pattern: pattern, End: end}
	}

	primary := newScanner(line, t.wrappers)
	primary.scan(layout.Prefix.End, len(line), 0)
	layout.Spans = primary.spans

	// "* text*" is emphasis, not a list item: the leading star pairs with
	// an otherwise unmatched one.
	if layout.Prefix.Pattern.Kind == KindUnorderedList && line[0] == '*' && hasStray(line, layout, '*') {
		alt := newScanner(line, t.wrappers)
		alt.scan(0, len(line), 0)
		if len(alt.spans) > 0 && alt.spans[0].OpenStart == 0 {
			return Layout{Spans: alt.spans}
		}
	}

	return layout
}

// hasStray reports whether c occurs after the prefix outside every marker
// and every literal interior.
func hasStray(line string, layout Layout, c byte) bool {
	covered := make([]bool, len(line))
	cover := func(r Range) {
		for i := r.Start; i < r.End; i++ {
			covered[i] = true
		}
	}
	for _, span := range layout.Spans {
		cover(span.Open())
		cover(span.Close())
		if span.Pattern.literal() {
			cover(span.Interior())
		}
	}
	for i := layout.Prefix.End; i < len(line); i++ {
		if line[i] == c && !covered[i] {
			return true
		}
	}
	return false
}

type closeKey struct {
	pattern int
	from    int
	hi      int
}

type closeResult struct {
	at int
	ok bool
}

type scanner struct {
	line     string
	wrappers []Pattern
	spans    []Span
	closes   map[closeKey]closeResult
}

func newScanner(line string, wrappers []Pattern) *scanner {
	return &scanner{
		line:     line,
		wrappers: wrappers,
		closes:   make(map[closeKey]closeResult),
	}
}

// scan records every span opening in [lo, hi) and recurses into interiors.
func (s *scanner) scan(lo, hi, depth int) {
	for pos := lo; pos < hi; {
		span, ok := s.open(pos, hi, depth)
		if !ok {
			pos++
			continue
		}
		s.spans = append(s.spans, span)
		if !span.Pattern.literal() {
			s.scan(span.OpenEnd, span.CloseStart, depth+1)
		}
		pos = span.CloseEnd
	}
}

func (s *scanner) open(pos, hi, depth int) (Span, bool) {
	if depth >= maxDepth {
		return Span{}, false
	}
	for idx, pattern := range s.wrappers {
		if !s.opensAt(pattern, pos, hi) {
			continue
		}
		closeAt, ok := s.findClose(idx, pos+len(pattern.Open), hi)
		if !ok {
			continue
		}
		return Span{
			Pattern:    pattern,
			OpenStart:  pos,
			OpenEnd:    pos + len(pattern.Open),
			CloseStart: closeAt,
			CloseEnd:   closeAt + len(pattern.Close),
			Depth:      depth,
		}, true
	}
	return Span{}, false
}

// findClose returns the start of the closing marker for the wrapper at idx,
// searching [from, hi). Results are memoised per scanner.
func (s *scanner) findClose(idx, from, hi int) (int, bool) {
	key := closeKey{pattern: idx, from: from, hi: hi}
	if cached, ok := s.closes[key]; ok {
		return cached.at, cached.ok
	}
	at, ok := s.searchClose(idx, from, hi)
	s.closes[key] = closeResult{at: at, ok: ok}
	return at, ok
}

func (s *scanner) searchClose(idx, from, hi int) (int, bool) {
	pattern := s.wrappers[idx]
	longer := func(q Pattern) bool {
		return q.Open[0] == pattern.Close[0] && len(q.Open) > len(pattern.Close)
	}

	for pos := from; pos < hi; {
		if !pattern.literal() {
			if next, ok := s.skipNested(pos, hi, longer); ok {
				pos = next
				continue
			}
		}
		if (pos > from || pattern.allowsEmpty()) && s.closesAt(pattern, pos, hi) {
			return pos, true
		}
		if !pattern.literal() {
			if next, ok := s.skipNested(pos, hi, nil); ok {
				pos = next
				continue
			}
		}
		pos++
	}
	return 0, false
}

// skipNested returns the end of a complete wrapper pair opening at pos.
func (s *scanner) skipNested(pos, hi int, accept func(Pattern) bool) (int, bool) {
	for idx, pattern := range s.wrappers {
		if accept != nil && !accept(pattern) {
			continue
		}
		if !s.opensAt(pattern, pos, hi) {
			continue
		}
		if at, ok := s.findClose(idx, pos+len(pattern.Open), hi); ok {
			return at + len(pattern.Close), true
		}
	}
	return 0, false
}

func (s *scanner) opensAt(pattern Pattern, pos, hi int) bool {
	if !strings.HasPrefix(s.line[pos:hi], pattern.Open) {
		return false
	}
	// Intraword underscores are literal: snake_case_name.
	if pattern.Open[0] == '_' && pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(s.line[:pos])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func (s *scanner) closesAt(pattern Pattern, pos, hi int) bool {
	if !strings.HasPrefix(s.line[pos:hi], pattern.Close) {
		return false
	}
	end := pos + len(pattern.Close)
	if pattern.Close[0] == '_' && end < len(s.line) {
		r, _ := utf8.DecodeRuneInString(s.line[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
