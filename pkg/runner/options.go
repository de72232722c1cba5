// Package runner processes catalog messages concurrently: every message is
// parsed, checked, and depending on the mode extracted, composed or
// pseudo-localized, with results reported in input order.
package runner

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/goicu/pkg/catalog"
	"github.com/yaklabco/goicu/pkg/plural"
	"github.com/yaklabco/goicu/pkg/pseudo"
)

// Mode selects what is done with each message.
type Mode uint8

// Modes.
const (
	// ModeCheck only parses and validates.
	ModeCheck Mode = iota
	// ModeExtract also collects the translatable items.
	ModeExtract
	// ModeCompose recomposes each message for the target language.
	ModeCompose
	// ModePseudo pseudo-localizes the items before composing.
	ModePseudo
)

func (m Mode) String() string {
	switch m {
	case ModeExtract:
		return "extract"
	case ModeCompose:
		return "compose"
	case ModePseudo:
		return "pseudo"
	default:
		return "check"
	}
}

// PseudoLanguage is the target used by ModePseudo when none is set.
const PseudoLanguage = "qps-ploc"

// Options controls a run.
type Options struct {
	// Paths are files or directories searched for catalogs.
	// Empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process
	// working directory.
	WorkingDir string

	// Extensions are the catalog file extensions searched in directories.
	// Empty means DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// Workers is the number of concurrent workers; 0 or less means
	// runtime.NumCPU().
	Workers int

	Mode Mode

	// Language is the compose target; "" is English, or qps-ploc in
	// ModePseudo.
	Language string

	MergeDuplicates bool

	// Registry overrides the default plural table.
	Registry *plural.Registry

	Pseudo pseudo.Options

	Logger *log.Logger
}

// DefaultExtensions returns the extensions of every readable catalog format.
func DefaultExtensions() []string {
	return []string{".yml", ".yaml", ".json", ".toml", ".po"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) targetLanguage() string {
	if o.Language == "" && o.Mode == ModePseudo {
		return PseudoLanguage
	}
	return o.Language
}

// Job is one message to process.
type Job struct {
	Catalog string
	Key     string
	Message string
}

// JobsFromCatalog lists the messages of cat in order.
func JobsFromCatalog(cat *catalog.Catalog) []Job {
	jobs := make([]Job, len(cat.Entries))
	for i, e := range cat.Entries {
		jobs[i] = Job{Catalog: cat.Path, Key: e.Key, Message: e.Message}
	}
	return jobs
}
