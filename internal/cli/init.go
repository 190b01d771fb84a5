package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/configloader"
	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/pkg/config"
)

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .mdsplit.yml configuration file",
		Long: `Create a .mdsplit.yml configuration file in the current directory with
the default settings.

Examples:
  mdsplit init                       Create a minimal .mdsplit.yml
  mdsplit init --full                Document every option in the file
  mdsplit init --output custom.yml   Write to a custom path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every option in the template")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default .mdsplit.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigName()
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := configloader.WriteTemplate(cmd.Context(), absPath, config.TemplateOptions{Full: flags.full}, flags.force); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'mdsplit patterns' to list the names accepted by syntax.disable")

	return nil
}
