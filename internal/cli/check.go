package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/pkg/runner"
)

const checkLongDescription = `Validate ICU messages and report diagnostics.

Lexical and syntax errors always fail the check. Plural constructs without
an "other" branch and text outside any argument in a message with other
content are reported as warnings; use --strict to fail on them too.

By default checks every catalog (.yml, .yaml, .json, .toml, .po) under the
current directory. Use --message to check strings directly.

Examples:
  goicu check                          # Check catalogs under the current directory
  goicu check locales/en.yml           # Check one catalog
  goicu check -m "{n, plural, one {#}}" # Check a single message
  goicu check --format json            # Output as JSON for CI`

func newCheckCommand(g *globalFlags) *cobra.Command {
	var messages []string
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate ICU messages",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}

			result, err := runBatch(cmd, loaded, batch{
				mode:     runner.ModeCheck,
				language: loaded.Config.Language,
				paths:    args,
				messages: messages,
			})
			if err != nil {
				return err
			}

			return report(cmd, loaded.Config, result, flags, nil)
		},
	}

	cmd.Flags().StringArrayVarP(&messages, "message", "m", nil, "message to check instead of catalogs (repeatable)")
	addReportFlags(cmd, flags)

	return cmd
}
