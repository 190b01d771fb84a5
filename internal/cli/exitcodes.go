package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdsplit/pkg/runner"
)

// Exit codes for mdsplit.
const (
	// ExitSuccess indicates successful execution with no violations.
	ExitSuccess = 0

	// ExitViolations indicates check completed but found violations.
	ExitViolations = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrViolationsFound is returned by check when any violation was reported.
	ErrViolationsFound = errors.New("violations found")

	// ErrUnreadableFiles is returned by check when some files could not be read.
	ErrUnreadableFiles = errors.New("some files could not be read")

	// ErrUsage wraps command-line usage errors.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration errors.
	ErrConfig = errors.New("invalid configuration")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrViolationsFound):
		return ExitViolations
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnreadableFiles), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ExitCodeFromResult determines the exit code of a check run.
// Violations take precedence over unreadable files.
func ExitCodeFromResult(result *runner.Result) int {
	switch {
	case result.HasViolations():
		return ExitViolations
	case result.HasErrors():
		return ExitIOError
	default:
		return ExitSuccess
	}
}
