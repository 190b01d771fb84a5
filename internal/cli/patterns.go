package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/syntax"
)

type patternsFlags struct {
	all bool
}

// patternsOutput is the structured result of the patterns command.
type patternsOutput struct {
	Version  int              `json:"version" yaml:"version"`
	Patterns []syntax.Pattern `json:"patterns" yaml:"patterns"`
}

func newPatternsCommand(globals *globalFlags) *cobra.Command {
	flags := &patternsFlags{}

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the recognised Markdown patterns",
		Long: `List the line prefixes and inline wrappers mdsplit recognises, in the
order they are tried. Patterns disabled by syntax.disable in the
configuration are left out unless --all is given.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := globals.load(cmd, nil)
			if err != nil {
				return err
			}

			table := cfg.Table()
			if flags.all {
				table = syntax.DefaultTable()
			}

			out := cmd.OutOrStdout()
			if cfg.Format != config.FormatText {
				return reporter.Encode(out, reporter.Format(cfg.Format), patternsOutput{
					Version:  syntax.TableVersion,
					Patterns: table.Patterns(),
				})
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
			if _, err := fmt.Fprint(out, styles.FormatPatternTable(table.Patterns())); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "include patterns disabled by configuration")

	return cmd
}
