package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/catalog"
	"github.com/yaklabco/goicu/pkg/config"
	"github.com/yaklabco/goicu/pkg/fsutil"
	"github.com/yaklabco/goicu/pkg/reporter"
	"github.com/yaklabco/goicu/pkg/runner"
)

const composeLongDescription = `Recompose ICU messages for a target language.

Every plural construct is rewritten to carry exactly the categories the
target language uses: missing branches are added from the "other" branch
and unused ones are removed. Layout, selectors and exact (=N) branches
are kept.

Examples:
  goicu compose --lang fr -m "{days, plural, one {# day} other {# days}}"
  goicu compose --lang ja locales/en.yml
  goicu compose --lang ar --diff locales/
  goicu compose --lang fr locales/en.yml --write-to locales/fr.yml --backup`

func newComposeCommand(g *globalFlags) *cobra.Command {
	var messages []string
	var diff bool
	flags := &reportFlags{}
	out := &writeFlags{}

	cmd := &cobra.Command{
		Use:   "compose [paths...]",
		Short: "Recompose messages for a target language",
		Long:  composeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides []override
			if diff {
				overrides = append(overrides, override{
					flag:  "diff",
					key:   "format",
					apply: func(cfg *config.Config) { cfg.Format = config.FormatDiff },
				})
			}

			loaded, err := loadConfig(cmd, g, overrides...)
			if err != nil {
				return err
			}

			result, err := runBatch(cmd, loaded, batch{
				mode:     runner.ModeCompose,
				language: loaded.Config.Language,
				paths:    args,
				messages: messages,
			})
			if err != nil {
				return err
			}

			if out.path != "" {
				if err := writeComposed(cmd, result, out); err != nil {
					return err
				}
			}

			return report(cmd, loaded.Config, result, flags, func(o *reporter.Options) {
				o.ShowOutput = true
			})
		},
	}

	cmd.Flags().StringArrayVarP(&messages, "message", "m", nil, "message to compose instead of catalogs (repeatable)")
	cmd.Flags().BoolVar(&diff, "diff", false, "show a unified diff between input and composed output")
	cmd.Flags().StringVar(&out.path, "write-to", "", "write the composed catalog to this file")
	cmd.Flags().BoolVar(&out.backup, "backup", false, "keep a "+fsutil.BackupSuffix+" copy of the file --write-to replaces")
	addReportFlags(cmd, flags)

	return cmd
}

// writeFlags holds the compose output file options.
type writeFlags struct {
	path   string
	backup bool
}

// writeComposed stores the composed messages of a single catalog as a new
// catalog file. Entries that failed to compose keep their input.
func writeComposed(cmd *cobra.Command, result *runner.Result, out *writeFlags) error {
	if result.Stats.CatalogsLoaded > 1 {
		return usageErrorf("--write-to needs a single input catalog, got %d", result.Stats.CatalogsLoaded)
	}

	format, err := catalog.FormatFromPath(out.path)
	if err != nil {
		return usageErrorf("--write-to: %v", err)
	}

	cat := &catalog.Catalog{Format: format}
	for _, o := range result.Outcomes {
		msg := o.Output
		if o.Err != nil || !o.IsICU {
			msg = o.Input
		}
		cat.Entries = append(cat.Entries, catalog.Entry{Key: o.Key, Message: msg})
	}

	data, err := catalog.Marshal(cat, format)
	if errors.Is(err, catalog.ErrUnknownFormat) {
		return usageErrorf("--write-to: %v", err)
	}
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	path := filepath.Clean(out.path)

	if out.backup {
		created, err := fsutil.Backup(ctx, path)
		if err != nil {
			return fmt.Errorf("backup %s: %w", path, err)
		}
		if created {
			logger.Info("backed up catalog", logging.FieldPath, fsutil.BackupPath(path))
		}
	}

	written, err := fsutil.WriteIfChanged(ctx, path, data, fsutil.DefaultFileMode)
	if err != nil {
		return err
	}
	if written {
		logger.Info("wrote composed catalog", logging.FieldPath, path, logging.FieldEntriesTotal, len(cat.Entries))
	} else {
		logger.Debug("composed catalog unchanged", logging.FieldPath, path)
	}
	return nil
}
