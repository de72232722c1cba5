package fix

import "strings"

// ApplyEdits applies edits, sorted and checked by PrepareEdits, to s.
func ApplyEdits(s string, edits []TextEdit) string {
	if len(edits) == 0 {
		return s
	}

	grow := len(s)
	for _, e := range edits {
		grow += len(e.NewText) - e.Len()
	}

	var out strings.Builder
	out.Grow(max(grow, 0))

	cursor := 0
	for _, e := range edits {
		out.WriteString(s[cursor:e.Start])
		out.WriteString(e.NewText)
		cursor = e.End
	}
	out.WriteString(s[cursor:])

	return out.String()
}
