// Package msgast provides the syntax tree of an ICU MessageFormat string.
// Every node carries an inclusive byte span into the original input and
// explicit parent/child/sibling links, so passes can move up and down the
// tree without reflection.
package msgast

// Snapshot is an immutable view of one message: the input, its line index
// and the tree root.
type Snapshot struct {
	// Input is the message text.
	Input string

	// Lines contains metadata for each line of the input.
	Lines []LineInfo

	// Root is the tree root (a NodeMessage), nil until parsed.
	Root *Node
}

// LineInfo holds metadata for a single line of input.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of input).
	EndOffset int
}

// NewSnapshot creates a Snapshot for input with its line index built.
func NewSnapshot(input string) *Snapshot {
	return &Snapshot{
		Input: input,
		Lines: BuildLines(input),
	}
}

// Slice returns the input text covered by span, or "" if the span is
// outside the input.
func (s *Snapshot) Slice(span Span) string {
	if !span.IsValid() || span.Stop >= len(s.Input) {
		return ""
	}
	return s.Input[span.Start : span.Stop+1]
}
