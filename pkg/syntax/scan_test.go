package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsplit/pkg/syntax"
)

type spanShape struct {
	kind  syntax.Kind
	open  int
	close int
	depth int
}

func shapes(spans []syntax.Span) []spanShape {
	out := make([]spanShape, 0, len(spans))
	for _, span := range spans {
		out = append(out, spanShape{
			kind:  span.Pattern.Kind,
			open:  span.OpenStart,
			close: span.CloseStart,
			depth: span.Depth,
		})
	}
	return out
}

func TestScan_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		kind syntax.Kind
		end  int
	}{
		{"h1", "# Title", syntax.KindHeader, 2},
		{"h6", "###### Title", syntax.KindHeader, 7},
		{"h7 is not a header", "####### Title", "", 0},
		{"hash without space", "#tag", "", 0},
		{"header stub", "# ", syntax.KindHeader, 2},
		{"quote", "> quoted", syntax.KindQuote, 2},
		{"nested quote", ">> quoted", syntax.KindQuote, 3},
		{"spaced nested quote", "> > quoted", syntax.KindQuote, 4},
		{"bare quote", ">", syntax.KindQuote, 1},
		{"ordered", "1. item", syntax.KindOrderedList, 3},
		{"ordered multi digit", "42. item", syntax.KindOrderedList, 4},
		{"ordered without space", "1.item", "", 0},
		{"dash", "- item", syntax.KindUnorderedList, 2},
		{"plus", "+ item", syntax.KindUnorderedList, 2},
		{"star", "* item", syntax.KindUnorderedList, 2},
		{"dash alone", "-", "", 0},
		{"plain", "plain text", "", 0},
		{"empty", "", "", 0},
		{"indented", "  - item", "", 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			layout := syntax.DefaultTable().Scan(testCase.line)
			assert.Equal(t, testCase.kind, layout.Prefix.Pattern.Kind)
			assert.Equal(t, testCase.end, layout.Prefix.End)
			assert.Equal(t, testCase.end > 0, layout.Prefix.Present())
		})
	}
}

func TestScan_Wrappers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []spanShape
	}{
		{
			name: "bold",
			line: "**bold text**",
			want: []spanShape{{syntax.KindBold, 0, 11, 0}},
		},
		{
			name: "italic star",
			line: "*italic*",
			want: []spanShape{{syntax.KindItalic, 0, 7, 0}},
		},
		{
			name: "italic underscore",
			line: "_italic_",
			want: []spanShape{{syntax.KindItalic, 0, 7, 0}},
		},
		{
			name: "code",
			line: "`code snippet`",
			want: []spanShape{{syntax.KindInlineCode, 0, 13, 0}},
		},
		{
			name: "code interior is literal",
			line: "`**not bold**`",
			want: []spanShape{{syntax.KindInlineCode, 0, 13, 0}},
		},
		{
			name: "strikethrough double and single",
			line: "~~a~~ ~b~",
			want: []spanShape{
				{syntax.KindStrikethrough, 0, 3, 0},
				{syntax.KindStrikethrough, 6, 8, 0},
			},
		},
		{
			name: "bold around underscore italic",
			line: "**bold _and italic_**",
			want: []spanShape{
				{syntax.KindBold, 0, 19, 0},
				{syntax.KindItalic, 7, 18, 1},
			},
		},
		{
			name: "triple star is bold around italic",
			line: "***both***",
			want: []spanShape{
				{syntax.KindBold, 0, 8, 0},
				{syntax.KindItalic, 2, 7, 1},
			},
		},
		{
			name: "italic around bold",
			line: "*a **b** c*",
			want: []spanShape{
				{syntax.KindItalic, 0, 10, 0},
				{syntax.KindBold, 3, 6, 1},
			},
		},
		{
			name: "empty bold pair",
			line: "****",
			want: []spanShape{{syntax.KindBold, 0, 2, 0}},
		},
		{
			name: "lone star is literal",
			line: "2 * 3",
			want: []spanShape{},
		},
		{
			name: "double star is not empty italic",
			line: "a ** b",
			want: []spanShape{},
		},
		{
			name: "unterminated bold",
			line: "**open",
			want: []spanShape{},
		},
		{
			name: "intraword underscores",
			line: "snake_case_name",
			want: []spanShape{},
		},
		{
			name: "siblings",
			line: "Hello **world** and *more*",
			want: []spanShape{
				{syntax.KindBold, 6, 13, 0},
				{syntax.KindItalic, 20, 25, 0},
			},
		},
		{
			name: "marker inside code is skipped by enclosing bold",
			line: "**a `**` b**",
			want: []spanShape{
				{syntax.KindBold, 0, 10, 0},
				{syntax.KindInlineCode, 4, 7, 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			layout := syntax.DefaultTable().Scan(testCase.line)
			assert.Equal(t, testCase.want, shapes(layout.Spans))
		})
	}
}

func TestScan_StarListAmbiguity(t *testing.T) {
	t.Parallel()

	t.Run("list item with emphasis stays a list", func(t *testing.T) {
		t.Parallel()

		layout := syntax.DefaultTable().Scan("* item with *emphasis*")
		assert.Equal(t, syntax.KindUnorderedList, layout.Prefix.Pattern.Kind)
		assert.Equal(t, []spanShape{{syntax.KindItalic, 12, 21, 0}}, shapes(layout.Spans))
	})

	t.Run("leading star pairing with a trailing star is emphasis", func(t *testing.T) {
		t.Parallel()

		layout := syntax.DefaultTable().Scan("* text*")
		assert.False(t, layout.Prefix.Present())
		assert.Equal(t, []spanShape{{syntax.KindItalic, 0, 6, 0}}, shapes(layout.Spans))
	})
}

func TestLayout_Markers(t *testing.T) {
	t.Parallel()

	layout := syntax.DefaultTable().Scan("# **a** *b*")
	assert.Equal(t, []syntax.Range{
		{Start: 0, End: 2},
		{Start: 2, End: 4},
		{Start: 5, End: 7},
		{Start: 8, End: 9},
		{Start: 10, End: 11},
	}, layout.Markers())
}

func TestLayout_Enclosing(t *testing.T) {
	t.Parallel()

	layout := syntax.DefaultTable().Scan("**bold _and italic_**")

	chain := layout.Enclosing(10)
	require.Len(t, chain, 2)
	assert.Equal(t, syntax.KindBold, chain[0].Pattern.Kind)
	assert.Equal(t, syntax.KindItalic, chain[1].Pattern.Kind)

	assert.Len(t, layout.Enclosing(4), 1)
	assert.Empty(t, layout.Enclosing(0))
	assert.Empty(t, layout.Enclosing(21))
}

func TestSpan_Regions(t *testing.T) {
	t.Parallel()

	layout := syntax.DefaultTable().Scan("**bold**")
	require.Len(t, layout.Spans, 1)
	span := layout.Spans[0]

	assert.True(t, span.InOpen(1))
	assert.False(t, span.InOpen(2))
	assert.True(t, span.InClose(7))
	assert.False(t, span.InClose(6))
	assert.Equal(t, syntax.Range{Start: 2, End: 6}, span.Interior())
	assert.Equal(t, 4, span.Interior().Len())
}

func TestScan_DeepNestingStaysBounded(t *testing.T) {
	t.Parallel()

	line := ""
	for range 40 {
		line += "*_"
	}
	line += "x"
	for range 40 {
		line += "_*"
	}

	layout := syntax.DefaultTable().Scan(line)
	for _, span := range layout.Spans {
		assert.Less(t, span.Depth, 16)
	}
}
