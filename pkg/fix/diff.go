package fix

import (
	"fmt"
	"strings"
)

// LineKind classifies a line of a unified diff.
type LineKind int

const (
	// LineContext is unchanged.
	LineContext LineKind = iota
	// LineAdd only exists in the new text.
	LineAdd
	// LineRemove only exists in the old text.
	LineRemove
)

func (k LineKind) prefix() byte {
	switch k {
	case LineAdd:
		return '+'
	case LineRemove:
		return '-'
	default:
		return ' '
	}
}

// DiffLine is one line of a hunk.
type DiffLine struct {
	Kind LineKind
	Text string
}

// Hunk is a run of changes with its surrounding context.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []DiffLine
}

// Diff is a line diff between an original and a rewritten message.
type Diff struct {
	// Name labels the diff, usually the catalog key of the message.
	Name    string
	Hunks   []Hunk
	Added   int
	Removed int
}

// ContextLines is the number of unchanged lines kept around each change.
const ContextLines = 3

// GenerateDiff compares before and after line by line. It returns nil when they
// are equal.
func GenerateDiff(name, before, after string) *Diff {
	if before == after {
		return nil
	}

	ops := diffLines(splitLines(before), splitLines(after))

	d := &Diff{Name: name}
	for _, op := range ops {
		switch op.Kind {
		case LineAdd:
			d.Added++
		case LineRemove:
			d.Removed++
		}
	}
	d.Hunks = hunks(ops)
	if len(d.Hunks) == 0 {
		return nil
	}
	return d
}

// HasChanges reports whether d contains at least one hunk.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders d in unified diff format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", d.Name, d.Name)
	for _, h := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, line := range h.Lines {
			sb.WriteByte(line.Kind.prefix())
			sb.WriteString(line.Text)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// splitLines splits s on LF and drops the CR of CRLF endings.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// diffLines walks a longest-common-subsequence table and emits one
// operation per line.
func diffLines(a, b []string) []DiffLine {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	ops := make([]DiffLine, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			ops = append(ops, DiffLine{Kind: LineContext, Text: a[i]})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, DiffLine{Kind: LineRemove, Text: a[i]})
			i++
		default:
			ops = append(ops, DiffLine{Kind: LineAdd, Text: b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, DiffLine{Kind: LineRemove, Text: a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, DiffLine{Kind: LineAdd, Text: b[j]})
	}
	return ops
}

// hunks groups operations into hunks, merging changes separated by at most
// 2*ContextLines unchanged lines.
func hunks(ops []DiffLine) []Hunk {
	var out []Hunk

	for idx := 0; idx < len(ops); {
		if ops[idx].Kind == LineContext {
			idx++
			continue
		}

		start := max(idx-ContextLines, 0)
		end := idx
		for end < len(ops) {
			if ops[end].Kind != LineContext {
				end++
				continue
			}
			run := end
			for run < len(ops) && ops[run].Kind == LineContext {
				run++
			}
			if run == len(ops) || run-end > 2*ContextLines {
				break
			}
			end = run
		}
		stop := min(end+ContextLines, len(ops))

		out = append(out, buildHunk(ops, start, stop))
		idx = stop
	}

	return out
}

func buildHunk(ops []DiffLine, start, stop int) Hunk {
	h := Hunk{OldStart: 1, NewStart: 1}
	for _, op := range ops[:start] {
		if op.Kind != LineAdd {
			h.OldStart++
		}
		if op.Kind != LineRemove {
			h.NewStart++
		}
	}
	for _, op := range ops[start:stop] {
		if op.Kind != LineAdd {
			h.OldCount++
		}
		if op.Kind != LineRemove {
			h.NewCount++
		}
		h.Lines = append(h.Lines, op)
	}
	return h
}
