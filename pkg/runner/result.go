package runner

import (
	"github.com/yaklabco/goicu/pkg/fix"
	"github.com/yaklabco/goicu/pkg/segment"
)

// Outcome is the result of processing one message.
type Outcome struct {
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Key     string `json:"key" yaml:"key"`
	Input   string `json:"input" yaml:"input"`

	IsICU       bool                 `json:"is_icu" yaml:"is_icu"`
	Diagnostics []segment.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`

	// Items is set in every mode but ModeCheck.
	Items []*segment.Item `json:"items,omitempty" yaml:"items,omitempty"`

	// Output and Diff are set in ModeCompose and ModePseudo.
	Output string    `json:"output,omitempty" yaml:"output,omitempty"`
	Diff   *fix.Diff `json:"-" yaml:"-"`

	// Err is a fault that stopped processing of this message.
	Err error `json:"-" yaml:"-"`
}

// Changed reports whether composing altered the message.
func (o *Outcome) Changed() bool {
	return o.Diff.HasChanges()
}

// Stats aggregates a run.
type Stats struct {
	CatalogsLoaded         int            `json:"catalogs_loaded" yaml:"catalogs_loaded"`
	EntriesTotal           int            `json:"entries_total" yaml:"entries_total"`
	EntriesProcessed       int            `json:"entries_processed" yaml:"entries_processed"`
	EntriesICU             int            `json:"entries_icu" yaml:"entries_icu"`
	EntriesWithDiagnostics int            `json:"entries_with_diagnostics" yaml:"entries_with_diagnostics"`
	EntriesErrored         int            `json:"entries_errored" yaml:"entries_errored"`
	EntriesChanged         int            `json:"entries_changed" yaml:"entries_changed"`
	DiagnosticsTotal       int            `json:"diagnostics_total" yaml:"diagnostics_total"`
	DiagnosticsByKind      map[string]int `json:"diagnostics_by_kind,omitempty" yaml:"diagnostics_by_kind,omitempty"`
	ItemsTotal             int            `json:"items_total" yaml:"items_total"`
	ExpandedTotal          int            `json:"expanded_total" yaml:"expanded_total"`
}

// Result is the outcome of a run, in input order.
type Result struct {
	Outcomes []Outcome `json:"entries" yaml:"entries"`
	Stats    Stats     `json:"stats" yaml:"stats"`
}

// HasDiagnostics reports whether any message had a diagnostic.
func (r *Result) HasDiagnostics() bool {
	return r != nil && r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any message failed with a fault or carried
// a lexical or syntax diagnostic.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	byKind := r.Stats.DiagnosticsByKind
	return r.Stats.EntriesErrored > 0 ||
		byKind[segment.DiagLexical.String()]+byKind[segment.DiagSyntax.String()] > 0
}

func newResult(capacity int) *Result {
	return &Result{
		Outcomes: make([]Outcome, 0, capacity),
		Stats:    Stats{DiagnosticsByKind: make(map[string]int)},
	}
}

func (r *Result) accumulate(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	r.Stats.EntriesTotal++

	if o.Err != nil {
		r.Stats.EntriesErrored++
		return
	}
	r.Stats.EntriesProcessed++

	if o.IsICU {
		r.Stats.EntriesICU++
	}
	if len(o.Diagnostics) > 0 {
		r.Stats.EntriesWithDiagnostics++
	}
	r.Stats.DiagnosticsTotal += len(o.Diagnostics)
	for _, d := range o.Diagnostics {
		r.Stats.DiagnosticsByKind[d.Kind.String()]++
	}

	r.Stats.ItemsTotal += len(o.Items)
	for _, item := range o.Items {
		if item.IsExpanded() {
			r.Stats.ExpandedTotal++
		}
	}
	if o.Changed() {
		r.Stats.EntriesChanged++
	}
}
