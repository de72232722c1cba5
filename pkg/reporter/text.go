package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/goicu/internal/ui/pretty"
	"github.com/yaklabco/goicu/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Outcomes) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No messages to check."))
		}
		return 0, nil
	}

	for i := range result.Outcomes {
		r.reportOutcome(&result.Outcomes[i])
	}

	if r.opts.ShowSummary {
		if r.opts.Compact {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		} else {
			fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
		}
	}

	return countIssues(result), nil
}

func (r *TextReporter) reportOutcome(o *runner.Outcome) {
	issues := len(o.Diagnostics)
	if o.Err != nil {
		issues++
	}
	showItems := r.opts.ShowItems && len(o.Items) > 0
	showOutput := r.opts.ShowOutput && o.Err == nil && o.Output != ""

	if issues == 0 && !showItems && !showOutput {
		return
	}

	fmt.Fprintln(r.bw, r.styles.FormatEntryHeader(o.Catalog, o.Key, issues))

	if o.Err != nil {
		fmt.Fprintf(r.bw, "  %s\n", r.styles.Error.Render(fmt.Sprintf("error: %v", o.Err)))
	}

	var source string
	if r.opts.ShowContext {
		source = o.Input
	}
	for _, d := range o.Diagnostics {
		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(o.Key, d, source))
	}

	if showItems {
		for _, item := range o.Items {
			fmt.Fprint(r.bw, r.styles.FormatItem(item))
		}
	}

	if showOutput {
		fmt.Fprintln(r.bw, "  "+r.styles.Dim.Render("=>")+" "+o.Output)
	}

	fmt.Fprintln(r.bw)
}
