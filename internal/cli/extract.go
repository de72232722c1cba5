package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/pkg/reporter"
	"github.com/yaklabco/goicu/pkg/runner"
)

const extractLongDescription = `List the translatable items of ICU messages.

Each item carries a resource id, its text, the placeholders it must keep
and, for plural branches, the category it belongs to. Plural constructs
gain an ExpandedPlural item for every CLDR category the message does not
declare, pre-filled with the text of its "other" branch.

Examples:
  goicu extract -m "{days, plural, one {# day} other {# days}}"
  goicu extract locales/en.yml --format yaml
  goicu extract --merge -m "{g, select, male {Hi} other {Hi}}"`

func newExtractCommand(g *globalFlags) *cobra.Command {
	var messages []string
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "extract [paths...]",
		Short: "List translatable items",
		Long:  extractLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}

			result, err := runBatch(cmd, loaded, batch{
				mode:     runner.ModeExtract,
				language: loaded.Config.Language,
				paths:    args,
				messages: messages,
			})
			if err != nil {
				return err
			}

			return report(cmd, loaded.Config, result, flags, func(o *reporter.Options) {
				o.ShowItems = true
			})
		},
	}

	cmd.Flags().StringArrayVarP(&messages, "message", "m", nil, "message to extract instead of catalogs (repeatable)")
	addReportFlags(cmd, flags)

	return cmd
}
