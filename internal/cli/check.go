package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsplit/internal/logging"
	"github.com/yaklabco/mdsplit/pkg/analysis"
	"github.com/yaklabco/mdsplit/pkg/check"
	"github.com/yaklabco/mdsplit/pkg/config"
	"github.com/yaklabco/mdsplit/pkg/reporter"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

type checkFlags struct {
	ignore         []string
	extensions     []string
	jobs           int
	maxLineLength  int
	noContext      bool
	compact        bool
	summary        bool
	sortBy         string
	followSymlinks bool
}

const checkLongDescription = `Run strip, map and split over every prose line of Markdown files and
report any line where they disagree.

For each line the check verifies that stripping is idempotent, that every
view offset maps to an edit offset and back, that splitting at every view
position keeps the visible text intact, and that the cursor lands where the
typed text continues. Code blocks, HTML blocks, tables and front matter are
skipped.

By default all .md and .markdown files under the current directory are
checked.

Examples:
  mdsplit check                     # Check the current directory
  mdsplit check docs/ README.md     # Check specific paths
  mdsplit check --format json       # Output as JSON for CI
  mdsplit check --ignore 'drafts/**'
  mdsplit check --summary --sort alpha`

func newCheckCommand(globals *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Markdown files line by line",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, globals, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns for files to skip (repeatable)")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions to check (default .md,.markdown)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = all CPUs)")
	cmd.Flags().IntVar(&flags.maxLineLength, "max-line-length", 0, "skip lines longer than this many bytes (0 = no limit)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "omit the offending line under each violation")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary block")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "count", "order of the summary breakdown: count, alpha")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, globals *globalFlags, flags *checkFlags) error {
	sortBy, err := analysis.ParseSortField(flags.sortBy)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cliCfg := &config.Config{
		Check: config.CheckConfig{Ignore: flags.ignore},
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("max-line-length") {
		cliCfg.Check.MaxLineLength = flags.maxLineLength
	}

	cfg, err := globals.load(cmd, cliCfg)
	if err != nil {
		return err
	}

	splitter, err := cfg.Splitter()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	extensions := runner.DefaultExtensions()
	if len(flags.extensions) > 0 {
		extensions = normalizeExtensions(flags.extensions)
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     extensions,
		ExcludeGlobs:   cfg.Check.Ignore,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           cfg.Jobs,
	}

	ctx := logging.WithFields(cmd.Context(), logging.FieldStub, splitter.StubPlacement())
	logging.FromContext(ctx).Debug("starting check",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	engine := check.New(splitter, check.WithMaxLineLength(cfg.Check.MaxLineLength))
	result, err := runner.New(engine).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          cmd.OutOrStdout(),
		Format:          reporter.Format(cfg.Format),
		Color:           cfg.Color,
		ShowContext:     !flags.noContext,
		ShowSummary:     true,
		DetailedSummary: flags.summary,
		SortBy:          sortBy,
		Compact:         flags.compact,
		WorkingDir:      workDir,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logging.FromContext(ctx).Debug("check finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldLinesChecked, result.Stats.LinesChecked,
		logging.FieldViolations, result.Stats.Violations,
	)

	switch ExitCodeFromResult(result) {
	case ExitViolations:
		return ErrViolationsFound
	case ExitIOError:
		return ErrUnreadableFiles
	default:
		return nil
	}
}

// normalizeExtensions adds a leading dot where one is missing.
func normalizeExtensions(extensions []string) []string {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
