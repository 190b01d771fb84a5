package configloader

import (
	"slices"

	"github.com/yaklabco/mdsplit/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//
// Neither input is modified.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Split.Stub != "" {
		result.Split.Stub = override.Split.Stub
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Check.MaxLineLength != 0 {
		result.Check.MaxLineLength = override.Check.MaxLineLength
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	if override.Syntax.Disable != nil {
		result.Syntax.Disable = slices.Clone(override.Syntax.Disable)
	}
	if override.Check.Ignore != nil {
		result.Check.Ignore = slices.Clone(override.Check.Ignore)
	}

	return result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
