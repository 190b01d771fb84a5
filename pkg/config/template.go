package config

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/mdsplit/pkg/syntax"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every pattern of the default table that can be disabled.
	// If false, generates a minimal template.
	Full bool
}

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

split:
  # Which line keeps the marker-only stub when splitting inside a prefix
  # or an opening marker: above or below
  stub: above

syntax:
  # Pattern kinds or wrapper markers to ignore, e.g. "~" or "italic"
  disable: []
`)

	if opts.Full {
		buf.WriteString("  # Available names:\n")
		for _, pattern := range syntax.DefaultPatterns() {
			name := string(pattern.Kind)
			if pattern.IsWrapper() {
				name = fmt.Sprintf("%-4s (%s)", pattern.Open, pattern.Kind)
			}
			fmt.Fprintf(&buf, "  #   %-28s %s, precedence %d\n", name, pattern.Category, pattern.Precedence)
		}
	}

	buf.WriteString(`
check:
  # File patterns to skip (glob patterns)
  ignore:
    - "vendor/**"
    - "node_modules/**"
  # Lines longer than this are not checked (0 = no limit)
  max_line_length: 0

# Output format: text, json or yaml
# format: text

# Number of parallel workers for check (0 = auto)
# jobs: 0
`)

	return buf.Bytes()
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdsplit configuration
# See: https://github.com/yaklabco/mdsplit`
}
