package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/docedit"
	"github.com/yaklabco/mdsplit/pkg/fsutil"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/split"
)

type splitFlags struct {
	offset int
	stub   string
	units  string
	file   string
	line   int
	write  bool
}

// splitOutput is the structured result of the split command. Cursor is in Units.
type splitOutput struct {
	Before string     `json:"before" yaml:"before"`
	After  string     `json:"after" yaml:"after"`
	Cursor int        `json:"cursor" yaml:"cursor"`
	Case   split.Case `json:"case" yaml:"case"`
	Stub   string     `json:"stub" yaml:"stub"`
	Units  string     `json:"units" yaml:"units"`

	// Set when splitting a line of a file.
	Path           string `json:"path,omitempty" yaml:"path,omitempty"`
	Line           int    `json:"line,omitempty" yaml:"line,omitempty"`
	DocumentCursor int    `json:"document_cursor,omitempty" yaml:"document_cursor,omitempty"`
	Diff           string `json:"diff,omitempty" yaml:"diff,omitempty"`
	Written        bool   `json:"written,omitempty" yaml:"written,omitempty"`
}

func newSplitCommand(globals *globalFlags) *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split a line at a cursor offset, keeping formatting valid",
		Long: `Split one line of Markdown in two at an edit offset, as pressing Enter
would. Formatting open at the cursor is closed at the end of the first line
and reopened at the start of the second. A cursor inside a prefix or an
opening marker leaves a marker-only stub on one side (see --stub).

With --file and --line the split is applied to that line of a document and
shown as a unified diff; --write saves the result.

Examples:
  mdsplit split --offset 5 '**bold text**'
  mdsplit split --offset 1 --stub below '# Title'
  mdsplit split --file README.md --line 12 --offset 30 --write`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, globals, flags)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", 0, "cursor offset in the edit text (required)")
	cmd.Flags().StringVar(&flags.stub, "stub", "", "stub placement: above, below (default from config)")
	cmd.Flags().StringVar(&flags.units, "units", unitsBytes, "offset units: bytes, utf16")
	cmd.Flags().StringVar(&flags.file, "file", "", "split a line of this Markdown file")
	cmd.Flags().IntVar(&flags.line, "line", 0, "1-based line of --file to split")
	cmd.Flags().BoolVar(&flags.write, "write", false, "write the split back to --file")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, globals *globalFlags, flags *splitFlags) error {
	if err := validateSplitFlags(cmd, args, flags); err != nil {
		return err
	}

	cfg, err := globals.load(cmd, &config.Config{Split: config.SplitConfig{Stub: flags.stub}})
	if err != nil {
		return err
	}
	splitter, err := cfg.Splitter()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if flags.file != "" {
		return runSplitFile(cmd, cfg, splitter, flags)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	line, err := singleLine(text)
	if err != nil {
		return err
	}

	offset := toBytes(line, flags.offset, flags.units)
	result := splitter.Split(line, offset)

	logging.FromContext(cmd.Context()).Debug("split line",
		logging.FieldOffset, offset,
		logging.FieldCase, result.Case,
		logging.FieldStub, splitter.StubPlacement(),
	)

	out := cmd.OutOrStdout()
	if cfg.Format != config.FormatText {
		return reporter.Encode(out, reporter.Format(cfg.Format), newSplitOutput(result, splitter, flags.units))
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
	if _, err := fmt.Fprint(out, styles.FormatSplit(result)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func validateSplitFlags(cmd *cobra.Command, args []string, flags *splitFlags) error {
	if !cmd.Flags().Changed("offset") {
		return fmt.Errorf("%w: --offset is required", ErrUsage)
	}
	if err := validateUnits(flags.units); err != nil {
		return err
	}
	if flags.stub != "" && !split.StubPlacement(flags.stub).IsValid() {
		return fmt.Errorf("%w: unknown stub placement %q (expected above or below)", ErrUsage, flags.stub)
	}

	if flags.file == "" {
		if cmd.Flags().Changed("line") || flags.write {
			return fmt.Errorf("%w: --line and --write require --file", ErrUsage)
		}
		return nil
	}
	if len(args) > 0 {
		return fmt.Errorf("%w: text argument cannot be combined with --file", ErrUsage)
	}
	if flags.line < 1 {
		return fmt.Errorf("%w: --file requires --line of 1 or more", ErrUsage)
	}
	return nil
}

// runSplitFile splits one line of a document and prints the change as a diff.
func runSplitFile(cmd *cobra.Command, cfg *config.Config, splitter *split.Splitter, flags *splitFlags) error {
	ctx := logging.WithFields(cmd.Context(), logging.FieldPath, flags.file, logging.FieldLine, flags.line)
	logger := logging.FromContext(ctx)

	content, err := fsutil.ReadFile(ctx, flags.file)
	if err != nil {
		return err
	}

	lineText, err := docedit.Line(content, flags.line)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	offset := toBytes(lineText, flags.offset, flags.units)
	lineSplit, err := docedit.SplitLine(content, flags.line, offset, splitter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	modified, err := docedit.Apply(content, []docedit.TextEdit{lineSplit.Edit})
	if err != nil {
		return fmt.Errorf("apply split: %w", err)
	}
	diff := docedit.GenerateDiff(flags.file, content, modified)

	logger.Debug("split document line",
		logging.FieldOffset, offset,
		logging.FieldCase, lineSplit.Result.Case,
	)

	if flags.write {
		mode := fsutil.DefaultFileMode
		if info, statErr := os.Stat(flags.file); statErr == nil {
			mode = info.Mode().Perm()
		}
		if err := fsutil.WriteAtomic(ctx, flags.file, modified, mode); err != nil {
			return fmt.Errorf("write %s: %w", flags.file, err)
		}
		logger.Info("wrote split", logging.FieldCase, lineSplit.Result.Case)
	}

	out := cmd.OutOrStdout()
	if cfg.Format != config.FormatText {
		output := newSplitOutput(lineSplit.Result, splitter, flags.units)
		output.Path = flags.file
		output.Line = flags.line
		output.DocumentCursor = lineSplit.Cursor
		output.Diff = diff.String()
		output.Written = flags.write
		return reporter.Encode(out, reporter.Format(cfg.Format), output)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
	if _, err := fmt.Fprint(out, styles.FormatDiff(diff)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newSplitOutput(result split.Result, splitter *split.Splitter, units string) splitOutput {
	return splitOutput{
		Before: result.Before,
		After:  result.After,
		Cursor: fromBytes(result.After, result.CursorOffset, units),
		Case:   result.Case,
		Stub:   string(splitter.StubPlacement()),
		Units:  units,
	}
}
