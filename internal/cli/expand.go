package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goicu/internal/ui/pretty"
	"github.com/yaklabco/goicu/pkg/config"
	"github.com/yaklabco/goicu/pkg/expand"
	"github.com/yaklabco/goicu/pkg/icumsg"
	"github.com/yaklabco/goicu/pkg/segment"
)

const expandLongDescription = `Expand a list of plural forms to every CLDR category.

Each argument is a category=text pair. Categories the list lacks are filled
with the "other" text and marked as expanded. Keys that are not CLDR
categories are passed through first. With --lang only the categories that
language uses are emitted; without it, all six are.

Examples:
  goicu expand "one=# day" "other=# days"
  goicu expand --lang ru "one=# file" "other=# files"
  goicu expand --format json "=0=no files" "other=# files"`

func newExpandCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand category=text...",
		Short: "Expand plural forms without a message",
		Long:  expandLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forms, err := parseForms(args)
			if err != nil {
				return err
			}

			loaded, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}

			var lang string
			if cmd.Flags().Changed("lang") {
				lang = loaded.Config.Language
			}

			items, err := icumsg.ExpandPluralList(forms, lang, icumsg.WithRegistry(loaded.Registry))
			if err != nil {
				return usageError(err)
			}

			return writeItems(cmd.OutOrStdout(), loaded.Config, items)
		},
	}

	return cmd
}

// parseForms reads category=text pairs in argument order. The split is at
// the first "=" after the leading one of an exact selector like "=0".
func parseForms(args []string) (*expand.OrderedMap, error) {
	forms := expand.NewOrderedMap()
	for _, arg := range args {
		start := 0
		if strings.HasPrefix(arg, "=") {
			start = 1
		}
		idx := strings.Index(arg[start:], "=")
		if idx < 0 {
			return nil, usageErrorf("invalid form %q: expected category=text", arg)
		}
		key := arg[:start+idx]
		if strings.TrimSpace(key) == "" || key == "=" {
			return nil, usageErrorf("invalid form %q: empty category", arg)
		}
		forms.Set(key, arg[start+idx+1:])
	}
	return forms, nil
}

func writeItems(w io.Writer, cfg *config.Config, items []*segment.Item) error {
	switch cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(config.YAMLIndent())
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return nil
	case config.FormatDiff:
		return usageErrorf("format %q is not supported by expand", cfg.Format)
	default:
		styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), w))
		for _, item := range items {
			fmt.Fprint(w, styles.FormatItem(item))
		}
		return nil
	}
}
