package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsplit/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		clone := c.Clone()
		assert.Nil(t, clone)
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			Syntax: config.SyntaxConfig{Disable: []string{"~", "_"}},
			Check:  config.CheckConfig{Ignore: []string{"*.md", "vendor/**"}},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original.Syntax.Disable, clone.Syntax.Disable)

		clone.Syntax.Disable[0] = "changed"
		clone.Check.Ignore[0] = "changed"
		assert.Equal(t, "~", original.Syntax.Disable[0])
		assert.Equal(t, "*.md", original.Check.Ignore[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			Split:  config.SplitConfig{Stub: "below"},
			Check:  config.CheckConfig{MaxLineLength: 120},
			Format: config.FormatJSON,
			Jobs:   4,
			Color:  "never",
		}

		assert.Equal(t, original, original.Clone())
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Syntax.Disable = []string{"~"}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "stub: above")
		assert.NotContains(t, string(data), "color")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"~"}, parsed.Syntax.Disable)
	})

	t.Run("header is prepended", func(t *testing.T) {
		data, err := config.NewConfig().ToYAMLWithHeader("# generated")
		require.NoError(t, err)
		assert.Regexp(t, `^# generated\n\nsplit:`, string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		data := []byte(`
split:
  stub: below
syntax:
  disable: ["~", italic]
check:
  ignore: ["drafts/**"]
  max_line_length: 200
format: yaml
jobs: 2
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, "below", cfg.Split.Stub)
		assert.Equal(t, []string{"~", "italic"}, cfg.Syntax.Disable)
		assert.Equal(t, []string{"drafts/**"}, cfg.Check.Ignore)
		assert.Equal(t, 200, cfg.Check.MaxLineLength)
		assert.Equal(t, config.FormatYAML, cfg.Format)
		assert.Equal(t, 2, cfg.Jobs)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}
