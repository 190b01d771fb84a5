package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/strip"
)

type stripFlags struct {
	highlight bool
}

// stripOutput is one line of structured strip output.
type stripOutput struct {
	Edit string `json:"edit" yaml:"edit"`
	View string `json:"view" yaml:"view"`
}

func newStripCommand(globals *globalFlags) *cobra.Command {
	flags := &stripFlags{}

	cmd := &cobra.Command{
		Use:   "strip [text]",
		Short: "Print the view text of each line",
		Long: `Remove line prefixes and inline formatting markers, printing the text a
reader sees. Input is the argument, or stdin when no argument is given; each
line is stripped independently.

Examples:
  mdsplit strip '# **Hello** world'
  cat notes.md | mdsplit strip
  mdsplit strip --highlight '- a *b* c'`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, globals, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.highlight, "highlight", false, "print the edit text with markers highlighted")

	return cmd
}

func runStrip(cmd *cobra.Command, args []string, globals *globalFlags, flags *stripFlags) error {
	cfg, err := globals.load(cmd, nil)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	stripper := strip.New(cfg.Table())
	lines := inputLines(text)
	out := cmd.OutOrStdout()

	if cfg.Format != config.FormatText {
		outputs := make([]stripOutput, 0, len(lines))
		for _, line := range lines {
			outputs = append(outputs, stripOutput{Edit: line, View: stripper.Strip(line)})
		}
		return reporter.Encode(out, reporter.Format(cfg.Format), outputs)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
	for _, line := range lines {
		rendered := stripper.Strip(line)
		if flags.highlight {
			rendered = styles.HighlightMarkers(line, stripper.Mask(line))
		}
		if _, err := fmt.Fprintln(out, rendered); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
