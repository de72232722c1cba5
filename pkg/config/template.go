package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/goicu/pkg/plural"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full appends the plural categories of every supported language.
	Full bool

	// Registry supplies the language list for Full; nil means the default.
	Registry *plural.Registry
}

// DefaultTemplateHeader returns the header of generated configs.
func DefaultTemplateHeader() string {
	return `# goicu configuration
# See: https://github.com/yaklabco/goicu`
}

// GenerateTemplate creates a commented configuration file.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Default target language for compose (BCP 47 tag)
language: en

# Collapse items with identical text into one
merge_duplicates: false

# Output format: text, table, json, yaml or diff
format: text

# Terminal colors: auto, always or never
color: auto

# Number of parallel workers (0 = auto)
workers: 0

# Catalog files to skip (glob patterns)
# ignore:
#   - "vendor/**"

# Extra language tags mapped onto known plural profiles
# aliases:
#   mo: ro

# Pseudo-localization
pseudo:
  expansion: 0.3
  brackets: true
`)

	if !opts.Full {
		return buf.Bytes()
	}

	reg := opts.Registry
	if reg == nil {
		reg = plural.Default()
	}

	buf.WriteString("\n# Plural categories per language:\n")
	for _, prof := range reg.Profiles() {
		cats := make([]string, 0, plural.NumCategories)
		for _, c := range prof.Categories() {
			cats = append(cats, c.String())
		}
		line := fmt.Sprintf("%s (%s): %s", prof.Tag, prof.Name, strings.Join(cats, ", "))
		fmt.Fprintf(&buf, "#   %s\n", wrapComment(line, commentWrapWidth))
	}

	return buf.Bytes()
}

// wrapComment wraps text to maxWidth, continuing on indented comment lines.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n#     ")
}
