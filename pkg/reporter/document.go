package reporter

import (
	"github.com/yaklabco/goicu/pkg/runner"
	"github.com/yaklabco/goicu/pkg/segment"
)

// documentVersion identifies the layout of machine-readable output.
const documentVersion = "1"

// Document is the structure written by the JSON and YAML reporters.
type Document struct {
	Version string        `json:"version" yaml:"version"`
	Entries []EntryResult `json:"entries" yaml:"entries"`
	Summary Summary       `json:"summary" yaml:"summary"`
}

// EntryResult is one catalog message.
type EntryResult struct {
	Catalog     string          `json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Key         string          `json:"key" yaml:"key"`
	Input       string          `json:"input" yaml:"input"`
	IsICU       bool            `json:"isIcu" yaml:"isIcu"`
	Diagnostics []DiagnosticDoc `json:"diagnostics" yaml:"diagnostics"`
	Items       []ItemDoc       `json:"items,omitempty" yaml:"items,omitempty"`
	Output      string          `json:"output,omitempty" yaml:"output,omitempty"`
	Changed     bool            `json:"changed,omitempty" yaml:"changed,omitempty"`
	Error       string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// DiagnosticDoc is a single diagnostic.
type DiagnosticDoc struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
	Offset  int    `json:"offset" yaml:"offset"`
}

// ItemDoc is a single translatable item.
type ItemDoc struct {
	ResourceID string   `json:"resourceId" yaml:"resourceId"`
	Text       string   `json:"text" yaml:"text"`
	Category   string   `json:"category,omitempty" yaml:"category,omitempty"`
	Exclusions string   `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`
	Kind       string   `json:"kind" yaml:"kind"`
	Locked     []string `json:"locked,omitempty" yaml:"locked,omitempty"`
}

// Summary contains aggregate statistics.
type Summary struct {
	Catalogs      int            `json:"catalogs" yaml:"catalogs"`
	Messages      int            `json:"messages" yaml:"messages"`
	ICUMessages   int            `json:"icuMessages" yaml:"icuMessages"`
	WithIssues    int            `json:"withIssues" yaml:"withIssues"`
	Errored       int            `json:"errored" yaml:"errored"`
	Changed       int            `json:"changed" yaml:"changed"`
	TotalIssues   int            `json:"totalIssues" yaml:"totalIssues"`
	ByKind        map[string]int `json:"byKind" yaml:"byKind"`
	Items         int            `json:"items" yaml:"items"`
	ExpandedItems int            `json:"expandedItems" yaml:"expandedItems"`
}

// BuildDocument converts a run result into its machine-readable form.
func BuildDocument(result *runner.Result) *Document {
	doc := &Document{
		Version: documentVersion,
		Entries: make([]EntryResult, 0),
		Summary: Summary{ByKind: make(map[string]int)},
	}
	if result == nil {
		return doc
	}

	doc.Entries = make([]EntryResult, 0, len(result.Outcomes))
	for i := range result.Outcomes {
		doc.Entries = append(doc.Entries, entryResult(&result.Outcomes[i]))
	}

	stats := result.Stats
	doc.Summary = Summary{
		Catalogs:      stats.CatalogsLoaded,
		Messages:      stats.EntriesTotal,
		ICUMessages:   stats.EntriesICU,
		WithIssues:    stats.EntriesWithDiagnostics,
		Errored:       stats.EntriesErrored,
		Changed:       stats.EntriesChanged,
		TotalIssues:   stats.DiagnosticsTotal,
		ByKind:        make(map[string]int, len(stats.DiagnosticsByKind)),
		Items:         stats.ItemsTotal,
		ExpandedItems: stats.ExpandedTotal,
	}
	for kind, n := range stats.DiagnosticsByKind {
		doc.Summary.ByKind[kind] = n
	}

	return doc
}

func entryResult(o *runner.Outcome) EntryResult {
	entry := EntryResult{
		Catalog:     o.Catalog,
		Key:         o.Key,
		Input:       o.Input,
		IsICU:       o.IsICU,
		Diagnostics: make([]DiagnosticDoc, 0, len(o.Diagnostics)),
		Output:      o.Output,
		Changed:     o.Changed(),
	}
	if o.Err != nil {
		entry.Error = o.Err.Error()
	}

	for _, d := range o.Diagnostics {
		entry.Diagnostics = append(entry.Diagnostics, DiagnosticDoc{
			Kind:    d.Kind.String(),
			Message: d.Message,
			Line:    d.Line,
			Column:  d.Column,
			Offset:  d.Offset,
		})
	}

	for _, item := range o.Items {
		entry.Items = append(entry.Items, itemDoc(item))
	}

	return entry
}

func itemDoc(item *segment.Item) ItemDoc {
	return ItemDoc{
		ResourceID: item.ResourceID,
		Text:       item.Text,
		Category:   item.Category,
		Exclusions: item.Exclusions,
		Kind:       item.Kind.String(),
		Locked:     item.Locked,
	}
}
