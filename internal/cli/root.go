// Package cli provides the Cobra command structure for goicu.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	noConfig   bool
	debug      bool
	format     string
	color      string
	lang       string
	merge      bool
	workers    int
	ignore     []string
}

// NewRootCommand creates the root goicu command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "goicu",
		Short: "Extract, expand and recompose ICU MessageFormat strings",
		Long: `goicu parses ICU MessageFormat strings into translatable items.

Every text fragment becomes an item with a stable resource id and the
placeholders it must keep. Plural constructs are expanded to the full
set of CLDR categories so translators can fill in the forms a language
needs, and translated items are recomposed into a valid message that
carries exactly the plural branches of the target language.

goicu reads single messages from the command line or whole catalogs in
YAML, JSON, TOML and gettext PO format.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "info"
			if flags.debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config file")
	pf.BoolVar(&flags.noConfig, "no-config", false, "ignore user and project config files")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.format, "format", "text", "output format: text, table, json, yaml, diff")
	pf.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	pf.StringVarP(&flags.lang, "lang", "l", "", "target language (BCP 47 tag)")
	pf.BoolVar(&flags.merge, "merge", false, "merge items with identical text")
	pf.IntVar(&flags.workers, "workers", 0, "number of parallel workers (0 = auto)")
	pf.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of catalog files to skip")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newExtractCommand(flags))
	rootCmd.AddCommand(newComposeCommand(flags))
	rootCmd.AddCommand(newPseudoCommand(flags))
	rootCmd.AddCommand(newExpandCommand(flags))
	rootCmd.AddCommand(newLangsCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
