package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdsplit/pkg/position"
)

// Offset units accepted by --units.
const (
	unitsBytes = "bytes"
	unitsUTF16 = "utf16"
)

// usageArgs wraps a positional argument validator so its errors map to
// ExitInvalidUsage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

// readInput returns the single text argument, or all of stdin when no
// argument is given and stdin is not a terminal.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("%w: no input; pass the line as an argument or pipe it on stdin", ErrUsage)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// inputLines splits text into lines without their line endings.
func inputLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// singleLine returns text as one line, rejecting embedded line breaks.
func singleLine(text string) (string, error) {
	lines := inputLines(text)
	if len(lines) != 1 {
		return "", fmt.Errorf("%w: expected a single line, got %d", ErrUsage, len(lines))
	}
	return lines[0], nil
}

func validateUnits(units string) error {
	switch units {
	case unitsBytes, unitsUTF16:
		return nil
	default:
		return fmt.Errorf("%w: unknown units %q (expected bytes or utf16)", ErrUsage, units)
	}
}

// toBytes converts an offset in units into a byte offset within s.
func toBytes(s string, offset int, units string) int {
	if units == unitsUTF16 {
		return position.UTF16ToByte(s, offset)
	}
	return min(max(offset, 0), len(s))
}

// fromBytes converts a byte offset within s into units.
func fromBytes(s string, offset int, units string) int {
	if units == unitsUTF16 {
		return position.ByteToUTF16(s, offset)
	}
	return offset
}
