// Package compose rebuilds a message from its (possibly translated)
// segments for a target language.
//
// The input is copied byte by byte. Segment spans are replaced by the
// current segment text, plural branches the target language cannot use are
// dropped, and branches it needs but the author omitted are inserted in
// front of the "other" branch with the indentation of the existing ones.
package compose

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/goicu/pkg/extract"
	"github.com/yaklabco/goicu/pkg/plural"
	"github.com/yaklabco/goicu/pkg/segment"
)

// Compose returns input with every segment replaced by the text at the same
// index of texts, adjusted to the plural categories of profile.
func Compose(input string, texts []string, res *extract.Result, profile plural.Profile) (string, error) {
	if len(texts) != len(res.Segments) {
		return "", &segment.UsageError{
			Op:  "compose",
			Msg: fmt.Sprintf("got %d texts for %d segments", len(texts), len(res.Segments)),
		}
	}

	segmentAt := make(map[int]int, len(res.Segments))
	for idx, seg := range res.Segments {
		segmentAt[seg.Span.Start] = idx
	}

	injectAt := make(map[int][]*segment.Group)
	for _, g := range res.Groups {
		if g.OtherStart >= 0 {
			injectAt[g.OtherStart] = append(injectAt[g.OtherStart], g)
		}
	}

	removeAt := make(map[int]segment.Selector)
	for _, sel := range res.Selectors {
		if sel.Kind != segment.GroupPlural || !sel.Standard || sel.Category == plural.Other {
			continue
		}
		if !profile.Supports(sel.Category) {
			removeAt[sel.Span.Start] = sel
		}
	}

	var out strings.Builder
	out.Grow(len(input))

	for i := 0; i < len(input); {
		if groups, ok := injectAt[i]; ok {
			indent := trailingSpace(out.String())
			for _, g := range groups {
				writeExpanded(&out, g, profile, indent)
			}
		}

		if sel, ok := removeAt[i]; ok {
			i += sel.Span.Len()
			continue
		}

		if idx, ok := segmentAt[i]; ok {
			out.WriteString(texts[idx])
			i += res.Segments[idx].Span.Len()
			continue
		}

		out.WriteByte(input[i])
		i++
	}

	return out.String(), nil
}

func writeExpanded(out *strings.Builder, g *segment.Group, profile plural.Profile, indent string) {
	for _, item := range g.Expanded {
		c, ok := plural.ParseCategory(item.Category)
		if !ok || !profile.Supports(c) {
			continue
		}
		out.WriteString(c.String())
		out.WriteString(" {")
		out.WriteString(item.Text)
		out.WriteString("}")
		out.WriteString(indent)
	}
}

// trailingSpace returns the run of white space at the end of s.
func trailingSpace(s string) string {
	end := len(s)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return s[end:]
}
