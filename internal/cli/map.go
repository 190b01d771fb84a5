package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/position"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/strip"
)

type mapFlags struct {
	editOffset int
	viewOffset int
	units      string
}

// mapOutput is the structured result of the map command. Offsets are in Units.
type mapOutput struct {
	EditText   string `json:"edit_text" yaml:"edit_text"`
	ViewText   string `json:"view_text" yaml:"view_text"`
	EditOffset int    `json:"edit_offset" yaml:"edit_offset"`
	ViewOffset int    `json:"view_offset" yaml:"view_offset"`
	Units      string `json:"units" yaml:"units"`
}

func newMapCommand(globals *globalFlags) *cobra.Command {
	flags := &mapFlags{}

	cmd := &cobra.Command{
		Use:   "map [text]",
		Short: "Map a cursor offset between edit and view text",
		Long: `Translate a cursor offset in a line of Markdown. With --edit-offset the
offset is counted in the line as written and the matching view offset is
printed; with --view-offset it is counted in the stripped text and the
matching edit offset is printed. Exactly one of the two must be given.

Examples:
  mdsplit map --edit-offset 4 '**bold** text'
  mdsplit map --view-offset 2 --units utf16 '# 日本 *x*'`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, args, globals, flags)
		},
	}

	cmd.Flags().IntVar(&flags.editOffset, "edit-offset", 0, "cursor offset in the edit text")
	cmd.Flags().IntVar(&flags.viewOffset, "view-offset", 0, "cursor offset in the view text")
	cmd.Flags().StringVar(&flags.units, "units", unitsBytes, "offset units: bytes, utf16")

	return cmd
}

func runMap(cmd *cobra.Command, args []string, globals *globalFlags, flags *mapFlags) error {
	fromEdit := cmd.Flags().Changed("edit-offset")
	fromView := cmd.Flags().Changed("view-offset")
	if fromEdit == fromView {
		return fmt.Errorf("%w: exactly one of --edit-offset and --view-offset is required", ErrUsage)
	}
	if err := validateUnits(flags.units); err != nil {
		return err
	}

	cfg, err := globals.load(cmd, nil)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	line, err := singleLine(text)
	if err != nil {
		return err
	}

	stripper := strip.New(cfg.Table())
	mapper := position.New(stripper)
	view := stripper.Strip(line)

	var editBytes, viewBytes int
	if fromEdit {
		editBytes = toBytes(line, flags.editOffset, flags.units)
		viewBytes = mapper.EditToView(editBytes, line)
	} else {
		viewBytes = toBytes(view, flags.viewOffset, flags.units)
		editBytes = mapper.ViewToEdit(viewBytes, view, line)
	}

	logging.Default().Debug("mapped offset",
		logging.FieldEditOffset, editBytes,
		logging.FieldViewOffset, viewBytes,
		logging.FieldUnits, flags.units,
	)

	output := mapOutput{
		EditText:   line,
		ViewText:   view,
		EditOffset: fromBytes(line, editBytes, flags.units),
		ViewOffset: fromBytes(view, viewBytes, flags.units),
		Units:      flags.units,
	}

	out := cmd.OutOrStdout()
	if cfg.Format != config.FormatText {
		return reporter.Encode(out, reporter.Format(cfg.Format), output)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
	if fromEdit {
		_, err = fmt.Fprintf(out, "edit %d -> view %d\n", output.EditOffset, output.ViewOffset)
	} else {
		_, err = fmt.Fprintf(out, "view %d -> edit %d\n", output.ViewOffset, output.EditOffset)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s %s\n%s %s\n",
		styles.Label.Render("edit:"), styles.MarkCursor(line, editBytes),
		styles.Label.Render("view:"), styles.MarkCursor(view, viewBytes),
	)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
