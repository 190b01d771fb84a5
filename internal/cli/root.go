// Package cli provides the Cobra command structure for mdsplit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/configloader"
	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	format     string
}

// NewRootCommand creates the root mdsplit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdsplit",
		Short: "Map cursor positions and split lines of inline Markdown",
		Long: `mdsplit treats one line of Markdown as two texts: the edit text with its
markers and the view text a reader sees. It strips markers, maps cursor
offsets between the two, and splits a line at a cursor so that both halves
keep their formatting.

The check command runs the same machinery over every prose line of real
documents and reports any line where the guarantees do not hold.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if globals.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&globals.format, "format", "",
		"output format: text, json, yaml (default from config, else text)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newStripCommand(globals))
	rootCmd.AddCommand(newMapCommand(globals))
	rootCmd.AddCommand(newSplitCommand(globals))
	rootCmd.AddCommand(newPatternsCommand(globals))
	rootCmd.AddCommand(newCheckCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	installHelp(rootCmd)

	return rootCmd
}

// load resolves the configuration for a command. cliCfg carries values set
// by command flags and may be nil.
func (g *globalFlags) load(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.Default()

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	cliCfg.Color = g.color
	if g.format != "" {
		format, err := config.ParseOutputFormat(g.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		cliCfg.Format = format
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: g.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldStub, cfg.Split.Stub,
		logging.FieldDisabled, cfg.Syntax.Disable,
		logging.FieldJobs, cfg.Jobs,
	)

	return cfg, nil
}
