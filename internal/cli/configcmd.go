package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/internal/configloader"
)

func newConfigCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}

			data, err := loaded.Config.ToYAML()
			if err != nil {
				return fmt.Errorf("render configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, src := range loaded.Sources {
				fmt.Fprintf(out, "# source: %s\n", src)
			}
			_, err = out.Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List the environment variables goicu reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, v := range configloader.ListEnvVars() {
				fmt.Fprintf(out, "%-26s %-18s %s\n", v.Name, v.Field, v.Description)
			}
		},
	})

	return cmd
}
