// Package extract walks a message tree once and collects the translatable
// segments, plural groups, plural selector occurrences and strict-mode
// strays.
package extract

import (
	"strconv"
	"strings"

	"github.com/yaklabco/goicu/pkg/msgast"
	"github.com/yaklabco/goicu/pkg/plural"
	"github.com/yaklabco/goicu/pkg/resid"
	"github.com/yaklabco/goicu/pkg/segment"
)

// Result is everything extracted from one message.
type Result struct {
	// Segments are the translatable fragments in document order, with
	// resource ids already disambiguated.
	Segments []*segment.Segment

	// Groups are the plural constructs in document order (outer before
	// inner).
	Groups []*segment.Group

	// Selectors are the branch selectors of every plural construct.
	Selectors []segment.Selector

	// Strays are non-whitespace texts sharing a message with other
	// content.
	Strays []segment.Stray

	// ComplexArgs counts plural, select and selectordinal constructs.
	ComplexArgs int

	byID map[string]*segment.Group
}

// Group returns the plural group with the given id.
func (r *Result) Group(id string) (*segment.Group, bool) {
	g, ok := r.byID[id]
	return g, ok
}

// MissingOther returns the plural groups without an explicit "other".
func (r *Result) MissingOther() []*segment.Group {
	var out []*segment.Group
	for _, g := range r.Groups {
		if !g.HasOther() {
			out = append(out, g)
		}
	}
	return out
}

type extractor struct {
	res           *Result
	parentCounter int
}

// Extract walks the tree rooted at root. The only error it returns is a
// *segment.InvariantError for a tree that violates its own structure.
func Extract(root *msgast.Node) (*Result, error) {
	ex := &extractor{
		res: &Result{byID: make(map[string]*segment.Group)},
	}

	// Plural groups are registered on entry so inner text can find them.
	err := msgast.Walk(root, ex.visit)
	if err != nil {
		return nil, err
	}

	resid.Disambiguate(ex.res.Segments,
		func(s *segment.Segment) string { return s.ResourceID },
		func(s *segment.Segment, id string) { s.ResourceID = id })

	return ex.res, nil
}

func (ex *extractor) visit(n *msgast.Node) error {
	switch n.Kind {
	case msgast.NodeMessage:
		ex.collectStrays(n)
	case msgast.NodeComplexArg:
		ex.res.ComplexArgs++
		if n.Arg != nil && n.Arg.Kind == msgast.ArgPlural {
			ex.addGroup(n)
		}
	case msgast.NodeBranch:
		return ex.addSelector(n)
	case msgast.NodeText:
		return ex.addSegment(n)
	}
	return nil
}

func (ex *extractor) collectStrays(msg *msgast.Node) {
	if msg.ChildCount() < 2 {
		return
	}
	for child := msg.FirstChild; child != nil; child = child.Next {
		if child.Kind != msgast.NodeText {
			continue
		}
		if text := child.Text(); !isBlank(text) {
			ex.res.Strays = append(ex.res.Strays, segment.Stray{Text: text, Span: child.Span})
		}
	}
}

func (ex *extractor) addGroup(arg *msgast.Node) {
	g := &segment.Group{
		ID:         groupID(arg),
		ParentID:   ex.parentID(arg),
		OtherStart: -1,
		Span:       arg.Span,
	}
	ex.res.Groups = append(ex.res.Groups, g)
	ex.res.byID[g.ID] = g
}

// parentID joins the selectors of every enclosing branch, outermost first.
// Top-level constructs are numbered instead.
func (ex *extractor) parentID(arg *msgast.Node) string {
	var path []string
	for branch := arg.EnclosingBranch(); branch != nil; branch = branch.EnclosingBranch() {
		path = append(path, branch.Branch.Selector)
	}

	if len(path) == 0 {
		id := strconv.Itoa(ex.parentCounter)
		ex.parentCounter++
		return id
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return strings.Join(path, ".")
}

func (ex *extractor) addSelector(branch *msgast.Node) error {
	arg, err := owningArg(branch)
	if err != nil {
		return err
	}
	if arg.Arg.Kind != msgast.ArgPlural {
		return nil
	}

	id := groupID(arg)
	g, ok := ex.res.byID[id]
	if !ok {
		return &segment.InvariantError{Msg: "branch of unregistered plural group " + id, Spans: []msgast.Span{branch.Span}}
	}

	label := branch.Branch.Selector
	g.Categories = append(g.Categories, label)

	category, standard := plural.ParseCategory(label)
	if standard && category == plural.Other && g.OtherStart < 0 {
		g.OtherStart = branch.Span.Start
	}

	ex.res.Selectors = append(ex.res.Selectors, segment.Selector{
		Category: category,
		Standard: standard,
		Label:    label,
		GroupID:  id,
		Kind:     segment.GroupPlural,
		Span:     branch.Span,
	})

	return nil
}

func (ex *extractor) addSegment(text *msgast.Node) error {
	content := text.Text()
	if isBlank(content) {
		return nil
	}

	seg := &segment.Segment{
		Text: content,
		Span: text.Span,
	}

	if branch := text.EnclosingBranch(); branch != nil {
		arg, err := owningArg(branch)
		if err != nil {
			return err
		}
		seg.GroupKind = arg.Arg.Kind
		seg.Selector = branch.Branch.Selector
		seg.ResourceID = arg.Arg.Kind.String() + "." + branch.Branch.Selector
		if arg.Arg.Kind == msgast.ArgPlural {
			seg.GroupID = groupID(arg)
		}
	}

	for _, piece := range msgast.FindAll(text, (*msgast.Node).IsLocked) {
		seg.Locked = append(seg.Locked, piece.Text())
	}

	ex.res.Segments = append(ex.res.Segments, seg)

	return nil
}

// owningArg returns the complex argument a branch belongs to.
func owningArg(branch *msgast.Node) (*msgast.Node, error) {
	arg := branch.Parent
	if arg == nil || arg.Kind != msgast.NodeComplexArg || arg.Arg == nil || branch.Branch == nil {
		return nil, &segment.InvariantError{Msg: "branch without complex argument", Spans: []msgast.Span{branch.Span}}
	}
	return arg, nil
}

// groupID is the offset just after the construct's closing brace.
func groupID(arg *msgast.Node) string {
	return strconv.Itoa(arg.Span.Stop + 1)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Whole returns a result holding input as one untouched top-level segment.
// It stands in for a message that failed to parse or validate.
func Whole(input string) *Result {
	return &Result{
		Segments: []*segment.Segment{{
			Text: input,
			Span: msgast.Span{Start: 0, Stop: len(input) - 1},
		}},
		byID: make(map[string]*segment.Group),
	}
}
