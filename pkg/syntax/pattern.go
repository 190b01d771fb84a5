// Package syntax defines the table of markdown constructs recognised on a
// single editable line and the scanner that locates them.
//
// The table is the single contract shared by the stripper, the position
// mapper and the splitter: adding a construct means adding one row here.
package syntax

import (
	"slices"
	"strings"
)

// TableVersion identifies the revision of the default pattern table.
// Bump it whenever a row is added, removed or its precedence changes.
const TableVersion = 1

// Kind identifies a markdown construct.
type Kind string

const (
	KindHeader        Kind = "header"
	KindBold          Kind = "bold"
	KindItalic        Kind = "italic"
	KindStrikethrough Kind = "strikethrough"
	KindInlineCode    Kind = "inline-code"
	KindQuote         Kind = "quote-prefix"
	KindOrderedList   Kind = "ordered-list-prefix"
	KindUnorderedList Kind = "unordered-list-prefix"
)

// IsValid returns true if the kind is one of the known constructs.
func (k Kind) IsValid() bool {
	switch k {
	case KindHeader, KindBold, KindItalic, KindStrikethrough, KindInlineCode,
		KindQuote, KindOrderedList, KindUnorderedList:
		return true
	default:
		return false
	}
}

// Category separates line prefixes from inline wrappers.
type Category string

const (
	// CategoryPrefix applies once at line start and has no closing marker.
	CategoryPrefix Category = "prefix"

	// CategoryWrapper has symmetric opening and closing markers.
	CategoryWrapper Category = "wrapper"
)

// Pattern describes one recognised markdown construct.
type Pattern struct {
	// Kind is the construct this pattern recognises.
	Kind Kind `json:"kind" yaml:"kind"`

	// Category is prefix or wrapper.
	Category Category `json:"category" yaml:"category"`

	// Open is the opening marker. For prefix rows it is a representative
	// literal; the real match is done by the kind's matcher.
	Open string `json:"open" yaml:"open"`

	// Close is the closing marker. Empty for prefix rows.
	Close string `json:"close,omitempty" yaml:"close,omitempty"`

	// Precedence orders patterns that could match at the same position.
	// Lower values are tried first.
	Precedence int `json:"precedence" yaml:"precedence"`
}

// IsWrapper returns true for inline wrapper patterns.
func (p Pattern) IsWrapper() bool {
	return p.Category == CategoryWrapper
}

// IsPrefix returns true for line prefix patterns.
func (p Pattern) IsPrefix() bool {
	return p.Category == CategoryPrefix
}

// literal reports whether the interior of this wrapper is taken verbatim.
func (p Pattern) literal() bool {
	return p.Kind == KindInlineCode
}

// allowsEmpty reports whether the wrapper may enclose an empty interior.
// "****" is an empty bold pair; "**" is never an empty italic pair.
func (p Pattern) allowsEmpty() bool {
	return len(p.Close) > 1
}

// DefaultPatterns returns a fresh copy of the default pattern rows.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Kind: KindHeader, Category: CategoryPrefix, Open: "# ", Precedence: 0},
		{Kind: KindQuote, Category: CategoryPrefix, Open: "> ", Precedence: 1},
		{Kind: KindOrderedList, Category: CategoryPrefix, Open: "1. ", Precedence: 2},
		{Kind: KindUnorderedList, Category: CategoryPrefix, Open: "- ", Precedence: 3},

		{Kind: KindInlineCode, Category: CategoryWrapper, Open: "`", Close: "`", Precedence: 0},
		{Kind: KindBold, Category: CategoryWrapper, Open: "**", Close: "**", Precedence: 10},
		{Kind: KindBold, Category: CategoryWrapper, Open: "__", Close: "__", Precedence: 11},
		{Kind: KindStrikethrough, Category: CategoryWrapper, Open: "~~", Close: "~~", Precedence: 12},
		{Kind: KindItalic, Category: CategoryWrapper, Open: "*", Close: "*", Precedence: 20},
		{Kind: KindItalic, Category: CategoryWrapper, Open: "_", Close: "_", Precedence: 21},
		{Kind: KindStrikethrough, Category: CategoryWrapper, Open: "~", Close: "~", Precedence: 22},
	}
}

// Table is an immutable, precedence-ordered set of patterns.
// A Table is safe for concurrent use.
type Table struct {
	prefixes []Pattern
	wrappers []Pattern
}

//nolint:gochecknoglobals // Read-only default table shared by all callers.
var defaultTable = NewTable(DefaultPatterns()...)

// DefaultTable returns the shared default table.
func DefaultTable() *Table {
	return defaultTable
}

// NewTable builds a table from the given patterns. Patterns with an unknown
// category or an empty wrapper marker are ignored.
func NewTable(patterns ...Pattern) *Table {
	table := &Table{}
	for _, pattern := range patterns {
		switch pattern.Category {
		case CategoryPrefix:
			table.prefixes = append(table.prefixes, pattern)
		case CategoryWrapper:
			if pattern.Open == "" || pattern.Close == "" {
				continue
			}
			table.wrappers = append(table.wrappers, pattern)
		}
	}

	byPrecedence := func(a, b Pattern) int { return a.Precedence - b.Precedence }
	slices.SortStableFunc(table.prefixes, byPrecedence)
	slices.SortStableFunc(table.wrappers, byPrecedence)

	return table
}

// Patterns returns all rows, prefixes first, each group in precedence order.
func (t *Table) Patterns() []Pattern {
	all := make([]Pattern, 0, len(t.prefixes)+len(t.wrappers))
	all = append(all, t.prefixes...)
	return append(all, t.wrappers...)
}

// Prefixes returns the prefix rows in precedence order.
func (t *Table) Prefixes() []Pattern {
	return slices.Clone(t.prefixes)
}

// Wrappers returns the wrapper rows in precedence order.
func (t *Table) Wrappers() []Pattern {
	return slices.Clone(t.wrappers)
}

// Without returns a new table with every row removed whose kind or opening
// marker equals one of names. The receiver is not modified.
func (t *Table) Without(names ...string) *Table {
	if len(names) == 0 {
		return t
	}

	drop := func(p Pattern) bool {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == string(p.Kind) || (p.IsWrapper() && name == p.Open) {
				return true
			}
		}
		return false
	}

	kept := make([]Pattern, 0, len(t.prefixes)+len(t.wrappers))
	for _, p := range t.Patterns() {
		if !drop(p) {
			kept = append(kept, p)
		}
	}
	return NewTable(kept...)
}

// Lookup returns the first row of the given kind.
func (t *Table) Lookup(kind Kind) (Pattern, bool) {
	for _, p := range t.Patterns() {
		if p.Kind == kind {
			return p, true
		}
	}
	return Pattern{}, false
}
