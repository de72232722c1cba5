package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goicu/pkg/runner"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 issues (1 error, 2 warnings) in 2 of 40 messages".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := fmt.Sprintf("%d %s", stats.EntriesTotal, plural(stats.EntriesTotal, "message", "messages"))

	if stats.DiagnosticsTotal == 0 && stats.EntriesErrored == 0 {
		msg := s.Success.Render("No issues found") + s.Dim.Render(" ("+checked+" checked)")
		if stats.EntriesChanged > 0 {
			msg += ", " + s.Info.Render(fmt.Sprintf("%d changed", stats.EntriesChanged))
		}
		return msg + "\n"
	}

	var parts []string

	errs, warns := countLevels(stats)
	var breakdown []string
	if errs > 0 {
		breakdown = append(breakdown, s.Error.Render(fmt.Sprintf("%d %s", errs, plural(errs, "error", "errors"))))
	}
	if warns > 0 {
		breakdown = append(breakdown, s.Warning.Render(fmt.Sprintf("%d %s", warns, plural(warns, "warning", "warnings"))))
	}

	issues := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, plural(stats.DiagnosticsTotal, "issue", "issues"))
	if len(breakdown) > 0 {
		issues += " (" + strings.Join(breakdown, ", ") + ")"
	}
	parts = append(parts, issues+fmt.Sprintf(" in %d of %s", stats.EntriesWithDiagnostics, checked))

	if stats.EntriesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.EntriesErrored)))
	}
	if stats.EntriesChanged > 0 {
		parts = append(parts, s.Info.Render(fmt.Sprintf("%d changed", stats.EntriesChanged)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		fmt.Fprintf(&builder, "  %-22s %s\n", label+":", value)
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	if stats.CatalogsLoaded > 0 {
		row("Catalogs", s.SummaryValue.Render(strconv.Itoa(stats.CatalogsLoaded)))
	}
	row("Messages", s.SummaryValue.Render(strconv.Itoa(stats.EntriesTotal)))
	row("ICU messages", s.SummaryValue.Render(strconv.Itoa(stats.EntriesICU)))
	if stats.ItemsTotal > 0 {
		row("Items", s.SummaryValue.Render(strconv.Itoa(stats.ItemsTotal)))
		row("Expanded items", s.Info.Render(strconv.Itoa(stats.ExpandedTotal)))
	}
	if stats.EntriesChanged > 0 {
		row("Changed messages", s.Info.Render(strconv.Itoa(stats.EntriesChanged)))
	}

	builder.WriteString("\n")
	row("Total issues", s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)))
	for _, kind := range sortedKinds(stats.DiagnosticsByKind) {
		row("  "+kind, s.Dim.Render(strconv.Itoa(stats.DiagnosticsByKind[kind])))
	}
	if stats.EntriesErrored > 0 {
		row("Failed messages", s.Failure.Render(strconv.Itoa(stats.EntriesErrored)))
	}

	builder.WriteString("\n")
	errs, warns := countLevels(stats)
	switch {
	case errs > 0 || stats.EntriesErrored > 0:
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case warns > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// diagnosticKindNames are the DiagnosticsByKind keys in display order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var diagnosticKindNames = []string{"lexical", "syntax", "missing-other", "strict-mode"}

func sortedKinds(byKind map[string]int) []string {
	var out []string
	for _, name := range diagnosticKindNames {
		if byKind[name] > 0 {
			out = append(out, name)
		}
	}
	return out
}

func countLevels(stats runner.Stats) (errs, warns int) {
	errs = stats.DiagnosticsByKind["lexical"] + stats.DiagnosticsByKind["syntax"]
	warns = stats.DiagnosticsByKind["missing-other"] + stats.DiagnosticsByKind["strict-mode"]
	return errs, warns
}
