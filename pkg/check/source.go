package check

import (
	"bytes"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdsplit/pkg/docedit"
)

// Source is one line of prose taken from a document.
type Source struct {
	// Line is the 1-based line number in the document.
	Line int `json:"line" yaml:"line"`

	// Text is the raw line, including any block prefix.
	Text string `json:"text" yaml:"text"`
}

// newMarkdown creates the goldmark instance used to find prose lines.
// Strikethrough is enabled so ~~ spans parse the way the pattern table reads them.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
}

// proseLines returns every line of content that carries paragraph or heading
// text, in document order. Code blocks, HTML blocks and YAML front matter are
// skipped.
func proseLines(md goldmark.Markdown, content []byte) []Source {
	index := docedit.NewIndex(content)
	body := frontMatterEnd(content)

	reader := text.NewReader(content[body:])
	doc := md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	seen := make(map[int]struct{})
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node.Kind() {
		case ast.KindParagraph, ast.KindTextBlock, ast.KindHeading:
			segments := node.Lines()
			for i := range segments.Len() {
				segment := segments.At(i)
				if line := index.LineAt(body + segment.Start); line > 0 {
					seen[line] = struct{}{}
				}
			}
			return ast.WalkSkipChildren, nil
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		default:
			return ast.WalkContinue, nil
		}
	})

	lines := make([]int, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}
	slices.Sort(lines)

	sources := make([]Source, 0, len(lines))
	for _, line := range lines {
		sources = append(sources, Source{Line: line, Text: index.Text(line)})
	}
	return sources
}

// frontMatterEnd returns the offset just past a leading YAML front matter
// block, or 0 when the document has none.
func frontMatterEnd(content []byte) int {
	first, rest, found := bytes.Cut(content, []byte("\n"))
	if !found || string(bytes.TrimRight(first, "\r")) != "---" {
		return 0
	}

	offset := len(first) + 1
	for len(rest) > 0 {
		line, next, hasNext := bytes.Cut(rest, []byte("\n"))
		offset += len(line)
		if hasNext {
			offset++
		}
		switch string(bytes.TrimRight(line, "\r")) {
		case "---", "...":
			return offset
		}
		rest = next
	}
	return 0
}
