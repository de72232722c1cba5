package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/goicu/pkg/runner"
)

// Table formatting constants.
const (
	expandedSymbol   = "+"
	tablePadding     = 2
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	ellipsis         = "..."
)

// Column describes one table column. Flexible columns shrink first when
// the table is wider than the terminal.
type Column struct {
	Header   string
	Min      int
	Flexible bool
}

// TableRow is one row of cells.
type TableRow struct {
	Cells []string
	Level Level
}

// TableFormatter formats run results as styled tables.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

//nolint:gochecknoglobals // Read-only column layouts.
var (
	diagnosticColumns = []Column{
		{Header: "KEY", Min: 12, Flexible: true},
		{Header: "LOC", Min: 6},
		{Header: "KIND", Min: 8},
		{Header: "MESSAGE", Min: 30, Flexible: true},
	}
	itemColumns = []Column{
		{Header: "KEY", Min: 12, Flexible: true},
		{Header: "RESOURCE ID", Min: 14},
		{Header: "TEXT", Min: 30, Flexible: true},
		{Header: "", Min: 1},
	}
)

// FormatDiagnostics lists every diagnostic, grouped by message.
func (t *TableFormatter) FormatDiagnostics(result *runner.Result) string {
	if result == nil {
		return ""
	}

	var groups [][]TableRow
	for _, o := range result.Outcomes {
		var rows []TableRow
		for _, d := range o.Diagnostics {
			loc := "-"
			if d.Line > 0 {
				loc = fmt.Sprintf("%d:%d", d.Line, d.Column)
			}
			rows = append(rows, TableRow{
				Cells: []string{o.Key, loc, d.Kind.String(), d.Message},
				Level: LevelOf(d.Kind),
			})
		}
		if o.Err != nil {
			rows = append(rows, TableRow{
				Cells: []string{o.Key, "-", "fault", o.Err.Error()},
				Level: LevelError,
			})
		}
		if len(rows) > 0 {
			groups = append(groups, rows)
		}
	}

	if len(groups) == 0 {
		return ""
	}
	return t.render(diagnosticColumns, groups, t.diagnosticLegend())
}

// FormatItems lists the items of every message, grouped by message.
func (t *TableFormatter) FormatItems(result *runner.Result) string {
	if result == nil {
		return ""
	}

	var groups [][]TableRow
	for _, o := range result.Outcomes {
		rows := make([]TableRow, 0, len(o.Items))
		for _, item := range o.Items {
			marker, level := " ", LevelNone
			if item.IsExpanded() {
				marker, level = expandedSymbol, LevelInfo
			}
			rows = append(rows, TableRow{
				Cells: []string{o.Key, displayID(item), quote(item.Text), marker},
				Level: level,
			})
		}
		if len(rows) > 0 {
			groups = append(groups, rows)
		}
	}

	if len(groups) == 0 {
		return ""
	}
	return t.render(itemColumns, groups, t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = expanded plural category", expandedSymbol)))
}

func (t *TableFormatter) render(columns []Column, groups [][]TableRow, legend string) string {
	widths := t.columnWidths(columns, groups)

	var builder strings.Builder

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}
	builder.WriteString(t.styles.TableHeader.Render(formatCells(headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(t.separator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.separator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.rowStyle(row.Level).Render(formatCells(row.Cells, widths)))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.separator(widths, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(legend)
	builder.WriteString("\n")

	return builder.String()
}

// columnWidths sizes each column to its widest cell, then shrinks flexible
// columns, last first, until the table fits the terminal.
func (t *TableFormatter) columnWidths(columns []Column, groups [][]TableRow) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = max(c.Min, lipgloss.Width(c.Header))
	}
	for _, group := range groups {
		for _, row := range group {
			for i, cell := range row.Cells {
				if i < len(widths) {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	for i := len(columns) - 1; i >= 0; i-- {
		excess := totalWidth(widths) - t.termWidth
		if excess <= 0 {
			break
		}
		if columns[i].Flexible {
			widths[i] = max(columns[i].Min, widths[i]-excess)
		}
	}

	return widths
}

func totalWidth(widths []int) int {
	total := 1
	for _, w := range widths {
		total += w + tablePadding
	}
	return total
}

func formatCells(cells []string, widths []int) string {
	var builder strings.Builder
	builder.WriteString(" ")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = truncate(cells[i], w)
		}
		builder.WriteString(cell)
		if i < len(widths)-1 {
			builder.WriteString(strings.Repeat(" ", w-lipgloss.Width(cell)+tablePadding))
		}
	}
	return builder.String()
}

func (t *TableFormatter) separator(widths []int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, totalWidth(widths)))
}

func (t *TableFormatter) rowStyle(level Level) lipgloss.Style {
	switch level {
	case LevelError:
		return t.styles.TableErrorRow
	case LevelWarning:
		return t.styles.TableWarnRow
	case LevelInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

func (t *TableFormatter) diagnosticLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: lexical and syntax are errors | missing-other and strict-mode are warnings")
	}
	return t.styles.TableLegend.Render(fmt.Sprintf(" Legend: %s  %s",
		t.styles.TableErrorRow.Render(" error "),
		t.styles.TableWarnRow.Render(" warning ")))
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{fmt.Sprintf("%d messages checked", stats.EntriesTotal)}

	errs, warns := countLevels(stats)
	if errs > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", errs)))
	}
	if warns > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", warns)))
	}
	if stats.ExpandedTotal > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d expanded", stats.ExpandedTotal)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncate shortens s to at most width display cells, ending in "...".
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= len(ellipsis) {
		for lipgloss.Width(string(runes)) > width {
			runes = runes[:len(runes)-1]
		}
		return string(runes)
	}
	for lipgloss.Width(string(runes))+len(ellipsis) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
