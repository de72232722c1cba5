package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goicu/internal/ui/pretty"
	"github.com/yaklabco/goicu/pkg/config"
	"github.com/yaklabco/goicu/pkg/plural"
)

// langInfo is one row of langs output.
type langInfo struct {
	Tag        string   `json:"tag"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Supported  bool     `json:"supported"`
	Resolved   string   `json:"resolved,omitempty"`
}

func newLangsCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs [tags...]",
		Short: "List plural profiles or resolve language tags",
		Long: `Without arguments, list every language with an explicit plural profile
and the CLDR categories it uses, followed by the alias table.

With arguments, resolve each BCP 47 tag the way compose does: the tag and
its ancestors are tried against the profiles and aliases, and unknown tags
fall back to English.

Examples:
  goicu langs
  goicu langs sr-Latn-RS pt-BR xx
  goicu langs --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			reg := loaded.Registry

			var rows []langInfo
			if len(args) == 0 {
				for _, prof := range reg.Profiles() {
					rows = append(rows, profileInfo(prof.Tag, prof, true))
				}
			} else {
				for _, tag := range args {
					info := profileInfo(tag, reg.Resolve(tag), reg.IsLanguageSupported(tag))
					info.Resolved = reg.Resolve(tag).Tag
					rows = append(rows, info)
				}
			}

			out := cmd.OutOrStdout()
			if loaded.Config.Format == config.FormatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(rows); err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}
				return nil
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(string(loaded.Config.Color), out))
			writeLangs(out, styles, rows)
			if len(args) == 0 {
				writeAliases(out, styles, reg.Aliases())
			}
			return nil
		},
	}

	return cmd
}

func profileInfo(tag string, prof plural.Profile, supported bool) langInfo {
	cats := make([]string, 0, plural.NumCategories)
	for _, c := range prof.Categories() {
		cats = append(cats, c.String())
	}
	return langInfo{Tag: tag, Name: prof.Name, Categories: cats, Supported: supported}
}

func writeLangs(w io.Writer, styles *pretty.Styles, rows []langInfo) {
	tagWidth, nameWidth := 0, 0
	for _, r := range rows {
		tagWidth = max(tagWidth, len(r.Tag))
		nameWidth = max(nameWidth, len(r.Name))
	}

	for _, r := range rows {
		line := fmt.Sprintf("%s  %s  %s",
			styles.Key.Render(fmt.Sprintf("%-*s", tagWidth, r.Tag)),
			styles.Dim.Render(fmt.Sprintf("%-*s", nameWidth, r.Name)),
			strings.Join(r.Categories, ", "))
		if r.Resolved != "" && r.Resolved != r.Tag {
			line += styles.Dim.Render("  (via " + r.Resolved + ")")
		}
		if !r.Supported {
			line += "  " + styles.Warning.Render("unsupported")
		}
		fmt.Fprintln(w, line)
	}
}

func writeAliases(w io.Writer, styles *pretty.Styles, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.SummaryTitle.Render("Aliases"))
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s -> %s\n", styles.Key.Render(k), aliases[k])
	}
}
