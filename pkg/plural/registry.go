// Package plural holds the per-language CLDR plural category table and the
// rules for resolving a language tag to its profile.
//
// The table is embedded in the binary and parsed once into an immutable
// Registry. Callers that need extra aliases or profiles build a private
// Registry with NewRegistry instead of changing the shared one.
package plural

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// FallbackTag is the language used when a tag cannot be resolved.
const FallbackTag = "en"

//go:embed data/plural_ranges.yaml
var embeddedTable []byte

// tableFile is the on-disk shape of the plural table.
type tableFile struct {
	Version   int               `yaml:"version"`
	Languages []string          `yaml:"languages"`
	Aliases   map[string]string `yaml:"aliases"`
	Profiles  []profileEntry    `yaml:"profiles"`
}

type profileEntry struct {
	Tag        string   `yaml:"tag"`
	Name       string   `yaml:"name"`
	Categories []string `yaml:"categories"`
}

// Registry resolves language tags to plural profiles.
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	version    int
	languages  []string
	supported  map[string]bool
	profiles   []Profile
	byTag      map[string]int
	aliases    map[string]string
	exclusions [NumCategories]string
}

// Option customizes a Registry built by NewRegistry.
type Option func(*tableFile) error

// WithAliases adds or replaces alias entries (alias tag to canonical tag).
func WithAliases(aliases map[string]string) Option {
	return func(t *tableFile) error {
		if t.Aliases == nil {
			t.Aliases = make(map[string]string, len(aliases))
		}
		for from, to := range aliases {
			if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
				return fmt.Errorf("invalid alias %q -> %q", from, to)
			}
			t.Aliases[from] = to
		}
		return nil
	}
}

// WithProfiles adds profiles, replacing any existing entry with the same tag.
func WithProfiles(profiles ...Profile) Option {
	return func(t *tableFile) error {
		for _, prof := range profiles {
			if prof.Tag == "" {
				return fmt.Errorf("profile %q has no tag", prof.Name)
			}
			entry := profileEntry{Tag: prof.Tag, Name: prof.Name}
			for _, c := range prof.Categories() {
				entry.Categories = append(entry.Categories, c.String())
			}

			replaced := false
			for i := range t.Profiles {
				if strings.EqualFold(t.Profiles[i].Tag, prof.Tag) {
					t.Profiles[i] = entry
					replaced = true
				}
			}
			if !replaced {
				t.Profiles = append(t.Profiles, entry)
			}
		}
		return nil
	}
}

// WithTable replaces the embedded table with YAML data in the same format.
func WithTable(data []byte) Option {
	return func(t *tableFile) error {
		var table tableFile
		if err := yaml.Unmarshal(data, &table); err != nil {
			return fmt.Errorf("parse plural table: %w", err)
		}
		*t = table
		return nil
	}
}

//nolint:gochecknoglobals // Process-wide registry, read-only after first use.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded table.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := NewRegistry()
		if err != nil {
			panic(fmt.Sprintf("plural: embedded table is invalid: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// NewRegistry builds a private registry from the embedded table with the
// options applied in order.
func NewRegistry(opts ...Option) (*Registry, error) {
	var table tableFile
	if err := yaml.Unmarshal(embeddedTable, &table); err != nil {
		return nil, fmt.Errorf("parse embedded plural table: %w", err)
	}

	for _, opt := range opts {
		if err := opt(&table); err != nil {
			return nil, err
		}
	}

	return build(&table)
}

func build(table *tableFile) (*Registry, error) {
	reg := &Registry{
		version:   table.Version,
		languages: append([]string(nil), table.Languages...),
		supported: make(map[string]bool, len(table.Languages)),
		byTag:     make(map[string]int, len(table.Profiles)),
		aliases:   make(map[string]string, len(table.Aliases)),
	}

	for _, lang := range table.Languages {
		reg.supported[normalizeTag(lang)] = true
	}

	for _, entry := range table.Profiles {
		var cats []Category
		for _, label := range entry.Categories {
			c, ok := ParseCategory(label)
			if !ok {
				return nil, fmt.Errorf("profile %q: unknown plural category %q", entry.Tag, label)
			}
			cats = append(cats, c)
		}

		key := normalizeTag(entry.Tag)
		if key == "" {
			return nil, fmt.Errorf("profile %q has no tag", entry.Name)
		}
		if _, dup := reg.byTag[key]; dup {
			return nil, fmt.Errorf("duplicate profile for %q", entry.Tag)
		}
		reg.byTag[key] = len(reg.profiles)
		reg.profiles = append(reg.profiles, NewProfile(entry.Tag, entry.Name, cats...))
	}

	for from, to := range table.Aliases {
		reg.aliases[normalizeTag(from)] = to
	}

	for _, c := range Categories() {
		reg.exclusions[c] = reg.buildExclusions(c)
	}

	return reg, nil
}

// Version returns the table format version.
func (r *Registry) Version() int {
	return r.version
}

// Languages returns the supported-language list in table order.
func (r *Registry) Languages() []string {
	return append([]string(nil), r.languages...)
}

// Profiles returns every explicit profile in table order.
func (r *Registry) Profiles() []Profile {
	return append([]Profile(nil), r.profiles...)
}

// Aliases returns a copy of the alias table.
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for from, to := range r.aliases {
		out[from] = to
	}
	return out
}

// Resolve returns the profile for tag. At each step of the tag's ancestor
// chain ("sr-Latn-RS", "sr-Latn", "sr") it tries an exact profile match and
// then the alias table. Empty or unknown tags resolve to "en".
func (r *Registry) Resolve(tag string) Profile {
	if prof, ok := r.Lookup(tag); ok {
		return prof
	}
	return r.fallback()
}

// ResolveTag is Resolve for a parsed BCP 47 tag.
func (r *Registry) ResolveTag(tag language.Tag) Profile {
	if tag == language.Und {
		return r.fallback()
	}
	return r.Resolve(tag.String())
}

// Lookup is Resolve without the "en" fallback.
func (r *Registry) Lookup(tag string) (Profile, bool) {
	for _, candidate := range Ancestors(tag) {
		key := normalizeTag(candidate)
		if idx, ok := r.byTag[key]; ok {
			return r.profiles[idx], true
		}
		if target, ok := r.aliases[key]; ok {
			if idx, ok := r.byTag[normalizeTag(target)]; ok {
				return r.profiles[idx], true
			}
		}
	}
	return Profile{}, false
}

// IsLanguageSupported reports whether tag or one of its ancestors is a
// supported language, has a profile, or is an alias.
func (r *Registry) IsLanguageSupported(tag string) bool {
	for _, candidate := range Ancestors(tag) {
		key := normalizeTag(candidate)
		if r.supported[key] {
			return true
		}
		if _, ok := r.byTag[key]; ok {
			return true
		}
		if _, ok := r.aliases[key]; ok {
			return true
		}
	}
	return false
}

// Exclusions returns the language-range annotation attached to items of
// category c. Categories used by few languages list those languages
// negated ("!ar,!cy,!lv"); categories used by most languages list the
// languages lacking them ("ja,ko,..."). "other" has an empty annotation.
func (r *Registry) Exclusions(c Category) string {
	if int(c) >= NumCategories {
		return ""
	}
	return r.exclusions[c]
}

func (r *Registry) buildExclusions(c Category) string {
	var with, without []string
	for _, lang := range r.languages {
		if r.Resolve(lang).Supports(c) {
			with = append(with, lang)
		} else {
			without = append(without, lang)
		}
	}

	if len(without) == 0 {
		return ""
	}
	if len(with) <= len(without) {
		return "!" + strings.Join(with, ",!")
	}
	return strings.Join(without, ",")
}

func (r *Registry) fallback() Profile {
	if idx, ok := r.byTag[FallbackTag]; ok {
		return r.profiles[idx]
	}
	return NewProfile(FallbackTag, "English", One, Other)
}

// Ancestors returns tag followed by each parent obtained by removing the
// last subtag. "_" is accepted as a separator.
func Ancestors(tag string) []string {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return nil
	}

	var chain []string
	for tag != "" {
		chain = append(chain, tag)
		idx := strings.LastIndexByte(tag, '-')
		if idx < 0 {
			break
		}
		tag = tag[:idx]
	}
	return chain
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
}
