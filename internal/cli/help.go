package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/mdsplit/internal/ui/pretty"
)

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}{{ heading "Usage:" }}{{if .Runnable}}
  {{ command .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (pad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}
{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

// installHelp replaces cobra's help and usage output on root and every
// subcommand. Color is resolved when help is printed, so --color applies.
func installHelp(root *cobra.Command) {
	tmpl := template.Must(template.New("help").Funcs(template.FuncMap{
		"trimTrailing": trimTrailingSpace,
		"pad":          runewidth.FillRight,
		// Placeholders; each render binds the styled versions.
		"heading":    fmt.Sprint,
		"command":    fmt.Sprint,
		"subcommand": fmt.Sprint,
		"dim":        fmt.Sprint,
		"flags":      func(*pflag.FlagSet) string { return "" },
	}).Parse(helpTemplate))

	render := func(cmd *cobra.Command) error {
		colorMode := "auto"
		if flag := cmd.Flag("color"); flag != nil {
			colorMode = flag.Value.String()
		}
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

		bound := template.Must(tmpl.Clone()).Funcs(template.FuncMap{
			"heading":    renderer(styles.SummaryTitle.Render),
			"command":    renderer(styles.FilePath.Render),
			"subcommand": renderer(styles.Property.Render),
			"dim":        renderer(styles.Dim.Render),
			"flags":      func(set *pflag.FlagSet) string { return formatFlags(styles, set) },
		})
		if err := bound.Execute(cmd.OutOrStdout(), cmd); err != nil {
			return fmt.Errorf("render help: %w", err)
		}
		return nil
	}

	root.SetUsageFunc(render)
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if err := render(cmd); err != nil {
			cmd.PrintErrln(err)
		}
	})
}

func renderer(render func(...string) string) func(string) string {
	return func(text string) string { return render(text) }
}

// flagRow is one flag in help output, before styling.
type flagRow struct {
	short, long, kind, usage string
}

func (r flagRow) width() int {
	width := len("    --") + runewidth.StringWidth(r.long)
	if r.kind != "" {
		width += 1 + runewidth.StringWidth(r.kind)
	}
	return width
}

// formatFlags lists the visible flags of set with names aligned in one column.
func formatFlags(styles *pretty.Styles, set *pflag.FlagSet) string {
	var rows []flagRow
	set.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		kind, usage := pflag.UnquoteUsage(flag)
		if def := flag.DefValue; def != "" && def != "false" && def != "0" && def != "[]" {
			usage += fmt.Sprintf(" (default %s)", def)
		}
		rows = append(rows, flagRow{short: flag.Shorthand, long: flag.Name, kind: kind, usage: usage})
	})

	column := 0
	for _, row := range rows {
		column = max(column, row.width())
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var line strings.Builder
		line.WriteString("  ")
		if row.short != "" {
			line.WriteString(styles.Marker.Render("-" + row.short))
			line.WriteString(", ")
		} else {
			line.WriteString("    ")
		}
		line.WriteString(styles.Marker.Render("--" + row.long))
		if row.kind != "" {
			line.WriteString(" ")
			line.WriteString(styles.Dim.Render(row.kind))
		}
		line.WriteString(strings.Repeat(" ", column-row.width()+3))
		line.WriteString(row.usage)
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// trimTrailingSpace removes trailing blanks from every line of s.
func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
