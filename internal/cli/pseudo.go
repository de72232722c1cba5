package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/pkg/config"
	"github.com/yaklabco/goicu/pkg/reporter"
	"github.com/yaklabco/goicu/pkg/runner"
)

const pseudoLongDescription = `Pseudo-localize ICU messages.

Letters are replaced with accented look-alikes, text is padded by the
expansion ratio and optionally wrapped in brackets, so truncation and
hard-coded strings stand out in a running application. Placeholders and
plural "#" signs are left intact, and the result is composed for the
qps-ploc pseudo locale unless --lang says otherwise.

Examples:
  goicu pseudo -m "Hello {name}"
  goicu pseudo --expansion 0.5 --brackets=false locales/en.yml`

func newPseudoCommand(g *globalFlags) *cobra.Command {
	var messages []string
	var expansion float64
	var brackets bool
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "pseudo [paths...]",
		Short: "Pseudo-localize messages",
		Long:  pseudoLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd, g,
				override{flag: "expansion", key: "pseudo.expansion", apply: func(cfg *config.Config) {
					cfg.Pseudo.Expansion = expansion
				}},
				override{flag: "brackets", key: "pseudo.brackets", apply: func(cfg *config.Config) {
					cfg.Pseudo.Brackets = brackets
				}},
			)
			if err != nil {
				return err
			}

			// Only an explicit --lang moves off the pseudo locale.
			var lang string
			if cmd.Flags().Changed("lang") {
				lang = loaded.Config.Language
			}

			result, err := runBatch(cmd, loaded, batch{
				mode:     runner.ModePseudo,
				language: lang,
				paths:    args,
				messages: messages,
			})
			if err != nil {
				return err
			}

			return report(cmd, loaded.Config, result, flags, func(o *reporter.Options) {
				o.ShowOutput = true
			})
		},
	}

	cmd.Flags().StringArrayVarP(&messages, "message", "m", nil, "message to pseudo-localize instead of catalogs (repeatable)")
	cmd.Flags().Float64Var(&expansion, "expansion", 0, "padding as a fraction of the text length")
	cmd.Flags().BoolVar(&brackets, "brackets", true, "wrap each item in brackets")
	addReportFlags(cmd, flags)

	return cmd
}
