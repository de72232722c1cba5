package fix

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/yaklabco/goicu/pkg/msgast"
)

// RangeError describes an edit that does not fit the text it targets.
type RangeError struct {
	Edit    TextEdit
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// OverlapError describes two edits covering the same bytes.
type OverlapError struct {
	First  TextEdit
	Second TextEdit
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping ranges: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// ValidateEdits reports the first edit that falls outside [0, textLen] or
// ends before it starts.
func ValidateEdits(edits []TextEdit, textLen int) error {
	for _, e := range edits {
		switch {
		case e.Start < 0:
			return &RangeError{Edit: e, Message: "start offset is negative"}
		case e.End < e.Start:
			return &RangeError{Edit: e, Message: "end offset is before start offset"}
		case e.End > textLen:
			return &RangeError{Edit: e, Message: fmt.Sprintf("end offset %d exceeds length %d", e.End, textLen)}
		}
	}
	return nil
}

// SortEdits orders edits by start offset, then end offset.
func SortEdits(edits []TextEdit) {
	slices.SortStableFunc(edits, func(a, b TextEdit) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
}

// DetectConflicts reports the first pair of overlapping edits in a sorted
// slice. Two insertions at the same offset do not overlap.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev, curr := edits[i-1], edits[i]
		if curr.Start < prev.End {
			return &OverlapError{First: prev, Second: curr}
		}
	}
	return nil
}

// PrepareEdits validates a copy of edits, sorts it and checks for overlaps.
func PrepareEdits(edits []TextEdit, textLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	if err := ValidateEdits(edits, textLen); err != nil {
		return nil, err
	}

	sorted := slices.Clone(edits)
	SortEdits(sorted)

	if err := DetectConflicts(sorted); err != nil {
		return nil, err
	}

	return sorted, nil
}

// CheckSpans verifies that inclusive spans lie inside a text of length
// textLen and that no two of them share a byte.
func CheckSpans(spans []msgast.Span, textLen int) error {
	edits := make([]TextEdit, 0, len(spans))
	for _, span := range spans {
		if !span.IsValid() {
			return &RangeError{Edit: FromSpan(span, ""), Message: "malformed span"}
		}
		edits = append(edits, FromSpan(span, ""))
	}
	_, err := PrepareEdits(edits, textLen)
	return err
}
