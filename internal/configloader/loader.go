// Package configloader resolves the effective goicu configuration from
// defaults, the user and project config files, an explicit --config file,
// GOICU_* environment variables and command-line flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/config"
	"github.com/yaklabco/goicu/pkg/plural"
)

// SourceKind identifies where a configuration layer came from.
type SourceKind string

const (
	SourceDefaults SourceKind = "defaults"
	SourceUser     SourceKind = "user"
	SourceProject  SourceKind = "project"
	SourceExplicit SourceKind = "explicit"
	SourceEnv      SourceKind = "env"
	SourceFlags    SourceKind = "flags"
)

// Source is one applied configuration layer.
type Source struct {
	Kind SourceKind
	Path string
}

func (s Source) String() string {
	if s.Path == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + " (" + s.Path + ")"
}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is where the project config search starts.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is a config file named with --config.
	ExplicitPath string

	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// NonInteractive suppresses hints meant for a terminal user.
	NonInteractive bool

	// CLIConfig holds values from command-line flags.
	CLIConfig *config.Config

	// CLISet names the CLIConfig fields the user actually passed, as yaml
	// keys. When nil, non-zero CLIConfig fields count as set.
	CLISet []string

	// Getenv reads environment variables; nil means os.Getenv.
	Getenv func(string) string

	Logger *log.Logger
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	Config *config.Config

	// Registry is the plural registry implied by Config.Aliases.
	Registry *plural.Registry

	Paths *ConfigPaths

	// Sources lists the applied layers, lowest precedence first.
	Sources []Source

	// LoadedFrom lists the files that were read, in order.
	LoadedFrom []string

	// Warnings contains non-fatal findings.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOICU_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.goicu.yml, searched upward)
//  5. User config ($XDG_CONFIG_HOME/goicu/config.yml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir, getenv)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{
		Paths:   paths,
		Sources: []Source{{Kind: SourceDefaults}},
	}
	cfg := config.Default()

	files := []struct {
		kind   SourceKind
		path   string
		ignore bool
	}{
		{SourceUser, paths.User, opts.IgnoreUserConfig},
		{SourceProject, paths.Project, opts.IgnoreProjectConfig},
		{SourceExplicit, paths.Explicit, false},
	}
	for _, f := range files {
		if f.path == "" || f.ignore {
			continue
		}
		l, findings, err := loadConfigFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", f.kind, err)
		}
		for _, w := range findings {
			result.Warnings = append(result.Warnings, w.Error())
		}
		cfg = merge(cfg, l)
		result.LoadedFrom = append(result.LoadedFrom, f.path)
		result.Sources = append(result.Sources, Source{Kind: f.kind, Path: f.path})
		logger.Debug("config loaded", logging.FieldConfigSource, f.kind, logging.FieldPath, f.path)
	}

	if !opts.IgnoreEnv {
		envCfg := &config.Config{}
		set, err := LoadFromEnv(envCfg, getenv)
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		if len(set) > 0 {
			cfg = merge(cfg, layer{cfg: envCfg, keys: keySet(set)})
			result.Sources = append(result.Sources, Source{Kind: SourceEnv})
		}
	}

	if opts.CLIConfig != nil {
		l := layer{cfg: opts.CLIConfig}
		if opts.CLISet != nil {
			l.keys = keySet(opts.CLISet)
		}
		cfg = merge(cfg, l)
		result.Sources = append(result.Sources, Source{Kind: SourceFlags})
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	if len(result.LoadedFrom) == 0 && !opts.NonInteractive && isInteractive() {
		result.Warnings = append(result.Warnings, "no .goicu.yml found; run 'goicu init' to create one")
	}

	reg, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("build plural registry: %w", err)
	}

	result.Config = cfg
	result.Registry = reg
	return result, nil
}

// knownKeys are the accepted config file keys.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string]bool{
	"language":         true,
	"merge_duplicates": true,
	"aliases":          true,
	"format":           true,
	"color":            true,
	"workers":          true,
	"ignore":           true,
	"pseudo":           true,
	"pseudo.expansion": true,
	"pseudo.brackets":  true,
}

// loadConfigFile reads a YAML config and records which keys it sets.
// Unknown keys are returned as findings with their line numbers.
func loadConfigFile(path string) (layer, []ValidationError, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return layer{}, nil, fmt.Errorf("read file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return layer{}, nil, fmt.Errorf("parse YAML: %w", err)
	}

	l := layer{cfg: &config.Config{}, keys: make(map[string]bool)}
	if len(doc.Content) == 0 {
		return l, nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return layer{}, nil, fmt.Errorf("parse YAML: %s: top level must be a mapping", path)
	}
	if err := root.Decode(l.cfg); err != nil {
		return layer{}, nil, fmt.Errorf("parse YAML: %w", err)
	}

	var findings []ValidationError
	collectKeys(root, "", func(key string, line int) {
		l.keys[key] = true
		if !knownKeys[key] {
			findings = append(findings, ValidationError{
				Field:    key,
				Message:  "unknown key; it will be ignored",
				FilePath: path,
				Line:     line,
			})
		}
	})

	return l, findings, nil
}

// collectKeys visits the keys of m and of the pseudo block nested in it.
func collectKeys(m *yaml.Node, prefix string, visit func(key string, line int)) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		key := prefix + k.Value
		visit(key, k.Line)
		if key == "pseudo" && v.Kind == yaml.MappingNode {
			collectKeys(v, key+".", visit)
		}
	}
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
