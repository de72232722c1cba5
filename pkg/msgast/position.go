package msgast

// Span is an inclusive byte range in the input.
// An empty span has Stop == Start-1.
type Span struct {
	Start int
	Stop  int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.Stop - s.Start + 1
}

// IsValid reports whether the span is well-formed.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Stop >= s.Start-1
}

// Text returns the source text for this node.
// Returns "" if the node has no associated file.
func (n *Node) Text() string {
	if n.File == nil {
		return ""
	}
	return n.File.Slice(n.Span)
}
