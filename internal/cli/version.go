package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/plural"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the goicu version, commit and build date, and the version and
size of the embedded plural table.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			reg := plural.Default()
			logging.NewInteractive(cmd.OutOrStdout()).Info("goicu",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
				logging.FieldPluralTable, reg.Version(),
				logging.FieldLanguages, len(reg.Languages()),
			)
		},
	}
}
