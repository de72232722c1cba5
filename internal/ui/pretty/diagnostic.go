package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/goicu/pkg/segment"
)

// FormatDiagnostic formats one diagnostic of the message stored under key.
// When input is non-empty the offending line is shown with a caret.
func (s *Styles) FormatDiagnostic(key string, diag segment.Diagnostic, input string) string {
	var builder strings.Builder

	location := s.Key.Render(key)
	if diag.Line > 0 {
		location += fmt.Sprintf(":%d:%d", diag.Line, diag.Column)
	}

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatKind(diag.Kind),
		s.Message.Render(diag.Message),
		s.Kind.Render("("+diag.Kind.String()+")"),
	)

	if input != "" && diag.Line > 0 {
		if line, ok := lineOf(input, diag.Line); ok {
			builder.WriteString(s.FormatSourceContext(line, diag.Column))
		}
	}

	return builder.String()
}

// FormatKind renders the level word for a diagnostic kind.
func (s *Styles) FormatKind(kind segment.DiagnosticKind) string {
	level := LevelOf(kind)
	if level == LevelNone {
		level = LevelInfo
	}
	return s.ForLevel(level).Render(level.String())
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	const indent = "        "

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		// Columns count bytes; the caret pads by display width.
		prefix := line
		if column-1 <= len(line) {
			prefix = line[:column-1]
		}
		builder.WriteString(indent + strings.Repeat(" ", lipgloss.Width(prefix)) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatEntryHeader formats the heading printed above an entry's details.
func (s *Styles) FormatEntryHeader(catalog, key string, issueCount int) string {
	header := s.Key.Render(key)
	if catalog != "" {
		header = s.Catalog.Render(catalog) + s.Dim.Render(" > ") + header
	}
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}

// FormatItem formats one translatable item on a single line.
func (s *Styles) FormatItem(item *segment.Item) string {
	var builder strings.Builder

	builder.WriteString("  " + s.ResourceID.Render(displayID(item)))
	builder.WriteString("  " + s.ItemText.Render(quote(item.Text)))

	if item.IsExpanded() {
		builder.WriteString("  " + s.Expanded.Render("[expanded]"))
	}
	if item.Exclusions != "" {
		builder.WriteString("  " + s.Dim.Render("exclusions="+item.Exclusions))
	}
	if len(item.Locked) > 0 {
		builder.WriteString("  " + s.Locked.Render("locked="+strings.Join(item.Locked, " ")))
	}

	builder.WriteString("\n")
	return builder.String()
}

func displayID(item *segment.Item) string {
	if item.ResourceID == "" {
		return "(text)"
	}
	return item.ResourceID
}

// quote shows an item's text on one line.
func quote(text string) string {
	return fmt.Sprintf("%q", text)
}

// lineOf returns the 1-based line n of s without its line ending.
func lineOf(s string, n int) (string, bool) {
	lines := strings.Split(s, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}
