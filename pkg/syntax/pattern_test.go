package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsplit/pkg/syntax"
)

func TestDefaultTable_Order(t *testing.T) {
	t.Parallel()

	table := syntax.DefaultTable()

	prefixes := table.Prefixes()
	require.Len(t, prefixes, 4)
	assert.Equal(t, syntax.KindHeader, prefixes[0].Kind)

	wrappers := table.Wrappers()
	require.Len(t, wrappers, 7)
	for i := 1; i < len(wrappers); i++ {
		assert.LessOrEqual(t, wrappers[i-1].Precedence, wrappers[i].Precedence)
	}
	assert.Equal(t, "`", wrappers[0].Open)
	assert.Equal(t, "**", wrappers[1].Open)

	assert.Len(t, table.Patterns(), 11)
}

func TestTable_Without(t *testing.T) {
	t.Parallel()

	t.Run("by marker", func(t *testing.T) {
		t.Parallel()

		table := syntax.DefaultTable().Without("~")
		for _, p := range table.Wrappers() {
			assert.NotEqual(t, "~", p.Open)
		}
		assert.Len(t, table.Wrappers(), 6)

		layout := table.Scan("~a~")
		assert.Empty(t, layout.Spans)
	})

	t.Run("by kind", func(t *testing.T) {
		t.Parallel()

		table := syntax.DefaultTable().Without(string(syntax.KindHeader))
		_, ok := table.Lookup(syntax.KindHeader)
		assert.False(t, ok)
		assert.False(t, table.Scan("# Title").Prefix.Present())
	})

	t.Run("nothing to drop returns receiver", func(t *testing.T) {
		t.Parallel()

		table := syntax.DefaultTable()
		assert.Same(t, table, table.Without())
	})

	t.Run("default table is not modified", func(t *testing.T) {
		t.Parallel()

		_ = syntax.DefaultTable().Without("**", "__")
		assert.Len(t, syntax.DefaultTable().Wrappers(), 7)
	})
}

func TestNewTable_IgnoresMalformedRows(t *testing.T) {
	t.Parallel()

	table := syntax.NewTable(
		syntax.Pattern{Kind: syntax.KindBold, Category: syntax.CategoryWrapper, Open: "", Close: "**"},
		syntax.Pattern{Kind: syntax.KindBold, Category: "other", Open: "**", Close: "**"},
		syntax.Pattern{Kind: syntax.KindItalic, Category: syntax.CategoryWrapper, Open: "*", Close: "*", Precedence: 5},
	)
	require.Len(t, table.Wrappers(), 1)
	assert.Equal(t, syntax.KindItalic, table.Wrappers()[0].Kind)
	assert.Empty(t, table.Prefixes())
}

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, syntax.KindInlineCode.IsValid())
	assert.True(t, syntax.KindUnorderedList.IsValid())
	assert.False(t, syntax.Kind("table").IsValid())
}
