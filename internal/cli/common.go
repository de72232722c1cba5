package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/internal/configloader"
	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/catalog"
	"github.com/yaklabco/goicu/pkg/config"
	"github.com/yaklabco/goicu/pkg/reporter"
	"github.com/yaklabco/goicu/pkg/runner"
)

// flagKey ties a global flag to the config key it overrides.
type flagKey struct {
	flag string
	key  string
}

//nolint:gochecknoglobals // Read-only lookup table.
var globalFlagKeys = []flagKey{
	{"lang", "language"},
	{"merge", "merge_duplicates"},
	{"format", "format"},
	{"color", "color"},
	{"workers", "workers"},
	{"ignore", "ignore"},
}

// override is a command-local flag that sets a config field.
type override struct {
	flag  string
	key   string
	apply func(cfg *config.Config)
}

// cliConfig builds the flag layer of the configuration. Only flags the user
// actually passed are reported as set.
func (g *globalFlags) cliConfig(cmd *cobra.Command, overrides []override) (*config.Config, []string) {
	cfg := &config.Config{
		Language:        g.lang,
		MergeDuplicates: g.merge,
		Format:          config.OutputFormat(g.format),
		Color:           config.ColorMode(g.color),
		Workers:         g.workers,
		Ignore:          g.ignore,
	}

	set := []string{}
	for _, fk := range globalFlagKeys {
		if cmd.Flags().Changed(fk.flag) {
			set = append(set, fk.key)
		}
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			o.apply(cfg)
			set = append(set, o.key)
		}
	}

	return cfg, set
}

// loadConfig resolves the effective configuration for cmd.
func loadConfig(cmd *cobra.Command, g *globalFlags, overrides ...override) (*configloader.LoadResult, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, set := g.cliConfig(cmd, overrides)

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        g.configPath,
		IgnoreUserConfig:    g.noConfig,
		IgnoreProjectConfig: g.noConfig,
		CLIConfig:           cfg,
		CLISet:              set,
		Logger:              logger,
	})
	if err != nil {
		return nil, configError(err)
	}

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}

	logger.Debug("configuration loaded",
		logging.FieldConfigSource, sourceList(loaded.Sources),
		logging.FieldLang, loaded.Config.Language,
		logging.FieldWorkers, loaded.Config.Workers,
		logging.FieldMerge, loaded.Config.MergeDuplicates,
	)

	return loaded, nil
}

func sourceList(sources []configloader.Source) string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// batch describes one catalog run.
type batch struct {
	mode     runner.Mode
	language string
	paths    []string
	messages []string
}

// runBatch processes inline messages, or the catalogs under the given paths
// when there are none.
func runBatch(cmd *cobra.Command, loaded *configloader.LoadResult, b batch) (*runner.Result, error) {
	ctx := logging.With(commandContext(cmd), logging.FieldMode, b.mode)
	logger := logging.FromContext(ctx)
	cfg := loaded.Config

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	r := runner.New(runner.Options{
		Paths:           b.paths,
		WorkingDir:      workDir,
		ExcludeGlobs:    cfg.Ignore,
		Workers:         cfg.Workers,
		Mode:            b.mode,
		Language:        b.language,
		MergeDuplicates: cfg.MergeDuplicates,
		Registry:        loaded.Registry,
		Pseudo:          cfg.Pseudo,
		Logger:          logger,
	})

	logger.Debug("starting run",
		"paths", b.paths,
		logging.FieldLang, b.language,
		logging.FieldWorkingDir, workDir,
	)

	var result *runner.Result
	if len(b.messages) > 0 {
		result, err = r.RunCatalogs(ctx, catalog.FromMessages(b.messages...))
	} else {
		result, err = r.RunPaths(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s run failed: %w", b.mode, err)
	}

	if faults := runner.Errors(result); faults != nil {
		logger.Debug("messages failed", logging.FieldEntriesFailed, result.Stats.EntriesErrored, logging.FieldError, faults)
	}

	return result, nil
}

// reportFlags are the output flags shared by the batch commands.
type reportFlags struct {
	strict    bool
	noContext bool
	compact   bool
}

func addReportFlags(cmd *cobra.Command, flags *reportFlags) {
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on warnings as well as errors")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}

// report writes result in the configured format and maps it to a command
// error.
func report(cmd *cobra.Command, cfg *config.Config, result *runner.Result, flags *reportFlags, show func(*reporter.Options)) error {
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return usageError(err)
	}

	opts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       string(cfg.Color),
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
	}
	if show != nil {
		show(&opts)
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return usageError(err)
	}

	if _, err := rep.Report(commandContext(cmd), result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, flags.strict) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}
