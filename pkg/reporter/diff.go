package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/goicu/internal/ui/pretty"
	"github.com/yaklabco/goicu/pkg/fix"
	"github.com/yaklabco/goicu/pkg/runner"
)

// DiffReporter formats composed messages as unified diffs against their
// input.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. The count it returns is the number of
// messages that changed.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var changed, additions, deletions int

	for i := range result.Outcomes {
		o := &result.Outcomes[i]
		if o.Err != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.Key.Render(displayName(o)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", o.Err)),
			)
			continue
		}
		if !o.Changed() {
			continue
		}

		changed++
		additions += o.Diff.Added
		deletions += o.Diff.Removed
		r.writeDiff(displayName(o), o.Diff)
	}

	if changed > 0 && r.opts.ShowSummary {
		r.writeSummary(changed, additions, deletions)
	}

	return changed, nil
}

// displayName joins the catalog path and the message key.
func displayName(o *runner.Outcome) string {
	if o.Catalog == "" {
		return o.Key
	}
	return o.Catalog + ":" + o.Key
}

func (r *DiffReporter) writeDiff(name string, diff *fix.Diff) {
	header := fmt.Sprintf("diff a/%s b/%s", name, name)
	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(header))
	fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("--- a/"+name))
	fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+++ b/"+name))

	for _, h := range diff.Hunks {
		hunk := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		fmt.Fprintln(r.bw, r.styles.DiffHunk.Render(hunk))
		for _, line := range h.Lines {
			r.writeDiffLine(line)
		}
	}

	fmt.Fprintln(r.bw)
}

func (r *DiffReporter) writeDiffLine(line fix.DiffLine) {
	switch line.Kind {
	case fix.LineAdd:
		fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+"+line.Text))
	case fix.LineRemove:
		fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("-"+line.Text))
	default:
		fmt.Fprintln(r.bw, r.styles.DiffContext.Render(" "+line.Text))
	}
}

func (r *DiffReporter) writeSummary(messages, additions, deletions int) {
	var parts []string

	messageWord := "messages"
	if messages == 1 {
		messageWord = "message"
	}
	parts = append(parts, fmt.Sprintf("%d %s changed", messages, messageWord))

	if additions > 0 {
		word := "insertions"
		if additions == 1 {
			word = "insertion"
		}
		parts = append(parts, r.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, word)))
	}

	if deletions > 0 {
		word := "deletions"
		if deletions == 1 {
			word = "deletion"
		}
		parts = append(parts, r.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, word)))
	}

	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}
