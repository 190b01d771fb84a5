package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/runner"
	"github.com/yaklabco/mdsplit/pkg/split"
	"github.com/yaklabco/mdsplit/pkg/syntax"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "split.stub").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Split.Stub != "" && !split.StubPlacement(cfg.Split.Stub).IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "split.stub",
			Value:   cfg.Split.Stub,
			Message: fmt.Sprintf("invalid stub placement %q; must be one of: above, below", cfg.Split.Stub),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, yaml", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Check.MaxLineLength < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "check.max_line_length",
			Value:   cfg.Check.MaxLineLength,
			Message: "max_line_length must be >= 0 (0 means no limit)",
		})
	}

	validateDisable(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateDisable warns about names that match no pattern of the default table.
func validateDisable(cfg *config.Config, result *ValidationResult) {
	patterns := syntax.DefaultPatterns()
	for i, name := range cfg.Syntax.Disable {
		name = strings.TrimSpace(name)
		known := slices.ContainsFunc(patterns, func(p syntax.Pattern) bool {
			return name == string(p.Kind) || (p.IsWrapper() && name == p.Open)
		})
		if !known {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("syntax.disable[%d]", i),
				Value:   name,
				Message: fmt.Sprintf("unknown pattern %q; it will be ignored", name),
			})
		}
	}
}

func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Check.Ignore {
		if err := runner.ValidateGlob(pattern); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("check.ignore[%d]", i),
				Value:   pattern,
				Message: err.Error(),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in findings.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
