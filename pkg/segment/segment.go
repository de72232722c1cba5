// Package segment defines the values produced by message extraction:
// translatable segments, plural groups, selector occurrences and the
// items handed to translators.
package segment

import (
	"github.com/yaklabco/goicu/pkg/msgast"
	"github.com/yaklabco/goicu/pkg/plural"
)

// GroupKind is the kind of complex argument enclosing a segment.
type GroupKind = msgast.ArgKind

// Group kinds.
const (
	GroupNone          = msgast.ArgNone
	GroupPlural        = msgast.ArgPlural
	GroupSelect        = msgast.ArgSelect
	GroupSelectOrdinal = msgast.ArgSelectOrdinal
)

// Segment is one translatable fragment of the input.
type Segment struct {
	// Text is the fragment as written, locked pieces included.
	Text string

	// ResourceID is "" for top-level text, otherwise "{Kind}.{selector}"
	// with a "#n" suffix when several segments share the id.
	ResourceID string

	// GroupKind and Selector describe the nearest enclosing branch.
	GroupKind GroupKind
	Selector  string

	// GroupID is the id of the plural group owning the nearest enclosing
	// branch, "" for top-level text.
	GroupID string

	// Locked lists the source text of every placeholder and number sign
	// in the fragment, in order.
	Locked []string

	Span msgast.Span
}

// Group is one plural construct.
type Group struct {
	// ID is the decimal offset just after the construct's closing brace.
	ID string

	// ParentID is the dotted selector path of the enclosing branches, or a
	// counter value for top-level constructs.
	ParentID string

	// Categories are the explicit selector labels, in source order.
	Categories []string

	// OtherStart is the offset of the "other" selector, -1 when absent.
	OtherStart int

	// Expanded holds the synthesized items for missing categories in
	// canonical category order.
	Expanded []*Item

	Span msgast.Span
}

// HasCategory reports whether c has an explicit branch, ignoring case.
func (g *Group) HasCategory(c plural.Category) bool {
	for _, label := range g.Categories {
		if parsed, ok := plural.ParseCategory(label); ok && parsed == c {
			return true
		}
	}
	return false
}

// HasOther reports whether the group has an explicit "other" branch.
func (g *Group) HasOther() bool {
	return g.HasCategory(plural.Other)
}

// Selector is one branch selector as parsed.
type Selector struct {
	// Category is valid only when Standard is true. Exact-match selectors
	// such as "=1" are not standard.
	Category plural.Category
	Standard bool

	Label   string
	GroupID string
	Kind    GroupKind

	// Span covers the selector label through the branch's closing brace.
	Span msgast.Span
}

// Stray is non-whitespace text sharing a message with other content,
// which the strict policy rejects.
type Stray struct {
	Text string
	Span msgast.Span
}
