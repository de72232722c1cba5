// Package config defines the goicu configuration model.
// These types are plain data; discovery and layering live in
// internal/configloader.
package config

import (
	"github.com/yaklabco/goicu/pkg/plural"
	"github.com/yaklabco/goicu/pkg/pseudo"
)

// OutputFormat specifies how results are reported.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatDiff  OutputFormat = "diff"
)

// OutputFormats lists every accepted format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatTable, FormatJSON, FormatYAML, FormatDiff}
}

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML, FormatDiff:
		return true
	default:
		return false
	}
}

// ColorMode controls terminal colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure.
type Config struct {
	// Language is the default compose target. Empty means English.
	Language string `yaml:"language"`

	// MergeDuplicates collapses items with identical text.
	MergeDuplicates bool `yaml:"merge_duplicates"`

	// Aliases map extra language tags onto existing plural profiles,
	// e.g. "mo: ro".
	Aliases map[string]string `yaml:"aliases,omitempty"`

	Format OutputFormat `yaml:"format"`
	Color  ColorMode    `yaml:"color"`

	// Workers is the number of concurrent catalog workers (0 = auto).
	Workers int `yaml:"workers"`

	// Ignore contains glob patterns for catalog files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	Pseudo pseudo.Options `yaml:"pseudo"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Language: plural.FallbackTag,
		Format:   FormatText,
		Color:    ColorAuto,
		Workers:  0,
		Pseudo:   pseudo.DefaultOptions(),
	}
}

// Registry returns the plural registry implied by the configured aliases:
// the shared one when there are none, otherwise a private copy.
func (c *Config) Registry() (*plural.Registry, error) {
	if c == nil || len(c.Aliases) == 0 {
		return plural.Default(), nil
	}
	return plural.NewRegistry(plural.WithAliases(c.Aliases))
}
