package icumsg

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/msgast"
	"github.com/yaklabco/goicu/pkg/parser/icu"
	"github.com/yaklabco/goicu/pkg/plural"
)

// Parser turns message text into a syntax tree.
// Implementations return a *icu.SyntaxError to have the failure reported
// with its kind and location.
type Parser interface {
	Parse(input string) (*msgast.Snapshot, error)
}

// Option configures Parse.
type Option func(*options)

type options struct {
	merge    bool
	registry *plural.Registry
	logger   *log.Logger
	parser   Parser
}

func newOptions(opts []Option) options {
	o := options{
		registry: plural.Default(),
		logger:   logging.Default(),
		parser:   icu.New(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMergeDuplicates makes Items return one item per distinct text and
// Compose map every segment back to the item holding its original text.
func WithMergeDuplicates(merge bool) Option {
	return func(o *options) {
		o.merge = merge
	}
}

// WithRegistry uses reg instead of the default plural table.
func WithRegistry(reg *plural.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithLogger sets the logger for debug events.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithParser replaces the built-in ICU parser.
func WithParser(p Parser) Option {
	return func(o *options) {
		if p != nil {
			o.parser = p
		}
	}
}
