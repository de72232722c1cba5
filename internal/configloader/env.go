package configloader

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/yaklabco/goicu/pkg/config"
)

// envVarPrefix is the prefix for all goicu environment variables.
const envVarPrefix = "GOICU_"

// envConfig is the environment view of config.Config; tags are the
// variable names without envVarPrefix.
type envConfig struct {
	Language        string   `env:"LANGUAGE"`
	MergeDuplicates bool     `env:"MERGE_DUPLICATES"`
	Format          string   `env:"FORMAT"`
	Color           string   `env:"COLOR"`
	Workers         int      `env:"WORKERS"`
	Ignore          []string `env:"IGNORE"`
	PseudoExpansion float64  `env:"PSEUDO_EXPANSION"`
	PseudoBrackets  bool     `env:"PSEUDO_BRACKETS"`
}

type envMapping struct {
	suffix string
	field  string
	help   string
	apply  func(cfg *config.Config, ec *envConfig)
}

// envMappings is in the order variables are applied and listed.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = []envMapping{
	{"LANGUAGE", "language", "Default compose language (BCP 47 tag)",
		func(cfg *config.Config, ec *envConfig) { cfg.Language = ec.Language }},
	{"MERGE_DUPLICATES", "merge_duplicates", "Collapse items with identical text: true or false",
		func(cfg *config.Config, ec *envConfig) { cfg.MergeDuplicates = ec.MergeDuplicates }},
	{"FORMAT", "format", "Output format: text, table, json, yaml or diff",
		func(cfg *config.Config, ec *envConfig) { cfg.Format = config.OutputFormat(ec.Format) }},
	{"COLOR", "color", "Terminal colors: auto, always or never",
		func(cfg *config.Config, ec *envConfig) { cfg.Color = config.ColorMode(ec.Color) }},
	{"WORKERS", "workers", "Number of parallel workers (0 = auto)",
		func(cfg *config.Config, ec *envConfig) { cfg.Workers = ec.Workers }},
	{"IGNORE", "ignore", "Comma-separated catalog glob patterns to skip",
		func(cfg *config.Config, ec *envConfig) { cfg.Ignore = trimList(ec.Ignore) }},
	{"PSEUDO_EXPANSION", "pseudo.expansion", "Pseudo-localization padding ratio",
		func(cfg *config.Config, ec *envConfig) { cfg.Pseudo.Expansion = ec.PseudoExpansion }},
	{"PSEUDO_BRACKETS", "pseudo.brackets", "Wrap pseudo-localized text in brackets: true or false",
		func(cfg *config.Config, ec *envConfig) { cfg.Pseudo.Brackets = ec.PseudoBrackets }},
}

// LoadFromEnv applies GOICU_* overrides read through getenv and returns the
// config keys it set. Empty variables count as unset.
func LoadFromEnv(cfg *config.Config, getenv func(string) string) ([]string, error) {
	if cfg == nil {
		return nil, nil
	}

	environ := make(map[string]string)
	var names []string
	for _, m := range envMappings {
		name := envVarPrefix + m.suffix
		if value := getenv(name); value != "" {
			environ[name] = value
			names = append(names, name)
		}
	}
	if len(environ) == 0 {
		return nil, nil
	}

	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{
		Environment: environ,
		Prefix:      envVarPrefix,
	}); err != nil {
		return nil, fmt.Errorf("parse environment (%s): %w", strings.Join(names, ", "), err)
	}

	var set []string
	for _, m := range envMappings {
		if _, ok := environ[envVarPrefix+m.suffix]; ok {
			m.apply(cfg, &ec)
			set = append(set, m.field)
		}
	}
	return set, nil
}

// trimList trims each element and drops the empty ones.
func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Field       string
	Description string
}

// ListEnvVars returns every supported environment variable.
func ListEnvVars() []EnvVar {
	out := make([]EnvVar, len(envMappings))
	for i, m := range envMappings {
		out[i] = EnvVar{Name: envVarPrefix + m.suffix, Field: m.field, Description: m.help}
	}
	return out
}
