package docedit

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/yaklabco/mdsplit/pkg/split"
)

// ErrLineOutOfRange is returned when a line number does not exist in a document.
var ErrLineOutOfRange = errors.New("line out of range")

// LineSplit is a split applied to one line of a document.
type LineSplit struct {
	// Line is the 1-based line that was split.
	Line int `json:"line" yaml:"line"`

	// Offset is the byte offset within the line.
	Offset int `json:"offset" yaml:"offset"`

	Result split.Result `json:"result" yaml:"result"`

	// Edit replaces the line with the two resulting lines.
	Edit TextEdit `json:"edit" yaml:"edit"`

	// Cursor is the byte offset of the cursor in the edited document.
	Cursor int `json:"cursor" yaml:"cursor"`
}

// lineSpan locates one line of a document. End excludes the line ending.
type lineSpan struct {
	start, end int
	eol        string
}

// lines returns the spans of every line in content. A trailing line ending
// does not start a new line; empty content has one empty line.
func lines(content []byte) []lineSpan {
	var spans []lineSpan
	start := 0
	for start <= len(content) {
		idx := bytes.IndexByte(content[start:], '\n')
		if idx < 0 {
			if start < len(content) || len(spans) == 0 {
				spans = append(spans, lineSpan{start: start, end: len(content)})
			}
			break
		}

		end := start + idx
		eol := "\n"
		if end > start && content[end-1] == '\r' {
			end--
			eol = "\r\n"
		}
		spans = append(spans, lineSpan{start: start, end: end, eol: eol})
		start += idx + 1
	}
	return spans
}

// Index locates the lines of a document by number or byte offset.
type Index struct {
	content []byte
	spans   []lineSpan
}

// NewIndex indexes the lines of content. LF and CRLF endings are recognised.
func NewIndex(content []byte) *Index {
	return &Index{content: content, spans: lines(content)}
}

// Count returns the number of lines.
func (x *Index) Count() int {
	return len(x.spans)
}

// LineAt returns the 1-based line holding offset, or 0 when offset is
// outside the content. A line ending belongs to the line it ends.
func (x *Index) LineAt(offset int) int {
	if offset < 0 || offset >= len(x.content) {
		return 0
	}
	idx := sort.Search(len(x.spans), func(i int) bool {
		return x.spans[i].end+len(x.spans[i].eol) > offset
	})
	if idx >= len(x.spans) {
		return 0
	}
	return idx + 1
}

// Text returns a 1-based line without its ending, or "" when out of range.
func (x *Index) Text(line int) string {
	span, err := x.span(line)
	if err != nil {
		return ""
	}
	return string(x.content[span.start:span.end])
}

func (x *Index) span(line int) (lineSpan, error) {
	if line < 1 || line > len(x.spans) {
		return lineSpan{}, fmt.Errorf("%w: %d (document has %d lines)", ErrLineOutOfRange, line, len(x.spans))
	}
	return x.spans[line-1], nil
}

func findLine(content []byte, line int) (lineSpan, error) {
	return NewIndex(content).span(line)
}

// LineCount returns the number of lines in content.
func LineCount(content []byte) int {
	return NewIndex(content).Count()
}

// Line returns the text of the 1-based line without its line ending.
func Line(content []byte, line int) (string, error) {
	span, err := findLine(content, line)
	if err != nil {
		return "", err
	}
	return string(content[span.start:span.end]), nil
}

// SplitLine splits the 1-based line of content at a byte offset within that
// line. The new line break uses the line's own ending, or "\n" for a final
// line without one.
func SplitLine(content []byte, line, offset int, splitter *split.Splitter) (*LineSplit, error) {
	span, err := findLine(content, line)
	if err != nil {
		return nil, err
	}

	eol := span.eol
	if eol == "" {
		eol = "\n"
	}

	result := splitter.Split(string(content[span.start:span.end]), offset)
	return &LineSplit{
		Line:   line,
		Offset: offset,
		Result: result,
		Edit: TextEdit{
			Start:   span.start,
			End:     span.end,
			NewText: result.Before + eol + result.After,
		},
		Cursor: span.start + len(result.Before) + len(eol) + result.CursorOffset,
	}, nil
}
