// Package fix provides byte-range edits over message text: building them,
// checking that they are well formed and disjoint, applying them, and
// rendering the result as a unified diff.
package fix

import "github.com/yaklabco/goicu/pkg/msgast"

// TextEdit replaces the bytes [Start, End) of a string.
type TextEdit struct {
	Start   int
	End     int
	NewText string
}

// Len is the number of original bytes the edit covers.
func (e TextEdit) Len() int {
	return e.End - e.Start
}

// FromSpan turns an inclusive source span into an edit replacing it.
func FromSpan(span msgast.Span, text string) TextEdit {
	return TextEdit{Start: span.Start, End: span.Stop + 1, NewText: text}
}

// EditBuilder accumulates edits against one string.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates an empty EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{Edits: make([]TextEdit, 0)}
}

// Replace adds an edit that replaces bytes [start, end) with text.
func (b *EditBuilder) Replace(start, end int, text string) {
	b.Edits = append(b.Edits, TextEdit{Start: start, End: end, NewText: text})
}

// Apply validates the accumulated edits and applies them to s.
func (b *EditBuilder) Apply(s string) (string, error) {
	edits, err := PrepareEdits(b.Edits, len(s))
	if err != nil {
		return "", err
	}
	return ApplyEdits(s, edits), nil
}
