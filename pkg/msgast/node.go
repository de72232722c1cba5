package msgast

// NodeKind classifies the type of a syntax tree node.
type NodeKind uint16

// Node kinds of an ICU MessageFormat tree.
const (
	// NodeMessage is a sequence of text runs and complex arguments. It is
	// the root of the tree and the body of every branch.
	NodeMessage NodeKind = iota

	// NodeText is a run of literal text. Its children are the locked
	// pieces embedded in the run (simple args, none args, number signs).
	NodeText

	// Locked pieces inside a text run.
	NodeSimpleArg
	NodeNoneArg
	NodeNumberSign

	// NodeComplexArg is a plural, select or selectordinal construct.
	NodeComplexArg

	// NodeBranch is one "selector {body}" variant of a complex argument.
	NodeBranch
)

var nodeKindNames = [...]string{
	NodeMessage:    "Message",
	NodeText:       "Text",
	NodeSimpleArg:  "SimpleArg",
	NodeNoneArg:    "NoneArg",
	NodeNumberSign: "NumberSign",
	NodeComplexArg: "ComplexArg",
	NodeBranch:     "Branch",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// ArgKind is the kind of a complex argument.
type ArgKind uint8

// Complex argument kinds.
const (
	ArgNone ArgKind = iota
	ArgPlural
	ArgSelect
	ArgSelectOrdinal
)

// String returns the name used to build resource ids ("Plural", "Select",
// "SelectOrdinal"). ArgNone renders as the empty string.
func (k ArgKind) String() string {
	switch k {
	case ArgPlural:
		return "Plural"
	case ArgSelect:
		return "Select"
	case ArgSelectOrdinal:
		return "SelectOrdinal"
	default:
		return ""
	}
}

// Keyword returns the keyword that introduces the argument in source text.
func (k ArgKind) Keyword() string {
	switch k {
	case ArgPlural:
		return "plural"
	case ArgSelect:
		return "select"
	case ArgSelectOrdinal:
		return "selectordinal"
	default:
		return ""
	}
}

// Node represents a single node in the message tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Span is the inclusive byte range of the node in the input.
	Span Span

	// File is a back-reference to the containing Snapshot.
	File *Snapshot

	// Arg holds attributes for argument nodes.
	Arg *ArgAttrs

	// Branch holds attributes for NodeBranch.
	Branch *BranchAttrs
}

// ArgAttrs holds attributes for SimpleArg, NoneArg and ComplexArg nodes.
type ArgAttrs struct {
	// Name is the argument name, e.g. "count".
	Name string

	// Kind is set for complex arguments only.
	Kind ArgKind

	// Type and Style are set for simple arguments only ("number", "::percent").
	Type  string
	Style string

	// Offset is the raw plural offset value, empty when absent.
	Offset string
}

// BranchAttrs holds attributes for branch nodes.
type BranchAttrs struct {
	// Selector is the selector label as written ("one", "=0", "female").
	Selector string

	// SelectorSpan is the range of the selector label.
	SelectorSpan Span
}

// IsLocked returns true for nodes whose source text must survive
// translation unchanged.
func (n *Node) IsLocked() bool {
	switch n.Kind {
	case NodeSimpleArg, NodeNoneArg, NodeNumberSign:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// EnclosingBranch returns the nearest branch ancestor, or nil at top level.
func (n *Node) EnclosingBranch() *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == NodeBranch {
			return p
		}
	}
	return nil
}
