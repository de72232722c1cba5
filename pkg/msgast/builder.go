package msgast

// NewNode creates a new node of the specified kind covering span.
// The node has no parent or children.
func NewNode(kind NodeKind, span Span) *Node {
	return &Node{
		Kind: kind,
		Span: span,
	}
}

// NewMessage creates a message node.
func NewMessage(span Span) *Node {
	return NewNode(NodeMessage, span)
}

// NewBranch creates a branch node with the given selector.
func NewBranch(span Span, selector string, selectorSpan Span) *Node {
	n := NewNode(NodeBranch, span)
	n.Branch = &BranchAttrs{Selector: selector, SelectorSpan: selectorSpan}
	return n
}

// NewComplexArg creates a complex argument node.
func NewComplexArg(span Span, name string, kind ArgKind) *Node {
	n := NewNode(NodeComplexArg, span)
	n.Arg = &ArgAttrs{Name: name, Kind: kind}
	return n
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// SetFile sets the file reference for a node and all its descendants.
func SetFile(node *Node, file *Snapshot) {
	if node == nil {
		return
	}

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(node, func(child *Node) error {
		child.File = file
		return nil
	})
}
