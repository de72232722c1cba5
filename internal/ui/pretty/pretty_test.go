package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goicu/internal/ui/pretty"
	"github.com/yaklabco/goicu/pkg/runner"
	"github.com/yaklabco/goicu/pkg/segment"
)

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diag := segment.Diagnostic{
		Kind:    segment.DiagSyntax,
		Message: "expected '}'",
		Line:    2,
		Column:  4,
		Offset:  9,
	}

	got := styles.FormatDiagnostic("greeting", diag, "first\nabcdef\n")
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  greeting:2:4  error  expected '}'  (syntax)", lines[0])
	assert.Equal(t, "        abcdef", lines[1])
	assert.Equal(t, "           ^", lines[2])
}

func TestFormatDiagnosticWithoutPosition(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	got := styles.FormatDiagnostic("k", segment.Diagnostic{Kind: segment.DiagMissingOther, Message: "m"}, "input")
	assert.Equal(t, "  k  warning  m  (missing-other)\n", got)
}

func TestLevelOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pretty.LevelError, pretty.LevelOf(segment.DiagLexical))
	assert.Equal(t, pretty.LevelError, pretty.LevelOf(segment.DiagSyntax))
	assert.Equal(t, pretty.LevelWarning, pretty.LevelOf(segment.DiagMissingOther))
	assert.Equal(t, pretty.LevelWarning, pretty.LevelOf(segment.DiagStrictMode))
}

func TestFormatKind(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		kind segment.DiagnosticKind
		want string
	}{
		{kind: segment.DiagLexical, want: "error"},
		{kind: segment.DiagSyntax, want: "error"},
		{kind: segment.DiagMissingOther, want: "warning"},
		{kind: segment.DiagStrictMode, want: "warning"},
		{kind: segment.DiagnosticKind(99), want: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatKind(tt.kind))
		})
	}
}

func TestFormatEntryHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "en.yml > app.title (1 issue)", styles.FormatEntryHeader("en.yml", "app.title", 1))
	assert.Equal(t, "app.title", styles.FormatEntryHeader("", "app.title", 0))
}

func TestFormatItem(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	item := &segment.Item{
		Text:       "# days",
		ResourceID: "ExpandedPlural.0.few",
		Exclusions: "!ru",
		Kind:       segment.KindExpandedPlural,
		Locked:     []string{"#"},
	}
	assert.Equal(t, `  ExpandedPlural.0.few  "# days"  [expanded]  exclusions=!ru  locked=#`+"\n", styles.FormatItem(item))
	assert.Equal(t, `  (text)  "Hi"`+"\n", styles.FormatItem(&segment.Item{Text: "Hi"}))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	clean := runner.Stats{EntriesTotal: 3, EntriesChanged: 1}
	assert.Equal(t, "No issues found (3 messages checked), 1 changed\n", styles.FormatSummaryOneLine(clean))

	dirty := runner.Stats{
		EntriesTotal:           5,
		EntriesWithDiagnostics: 2,
		EntriesErrored:         1,
		DiagnosticsTotal:       3,
		DiagnosticsByKind:      map[string]int{"syntax": 1, "strict-mode": 2},
	}
	assert.Equal(t, "3 issues (1 error, 2 warnings) in 2 of 5 messages, 1 failed\n", styles.FormatSummaryOneLine(dirty))
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	got := styles.FormatSummary(runner.Stats{
		EntriesTotal:      2,
		EntriesICU:        1,
		DiagnosticsTotal:  1,
		DiagnosticsByKind: map[string]int{"missing-other": 1},
	})
	assert.Contains(t, got, "Messages:")
	assert.Contains(t, got, "missing-other:")
	assert.Contains(t, got, "Check completed with warnings")

	assert.Contains(t, styles.FormatSummary(runner.Stats{EntriesTotal: 1}), "Check passed")
}

func TestTableDiagnostics(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	table := pretty.NewTableFormatter(styles, false, 80)

	res := &runner.Result{Outcomes: []runner.Outcome{
		{Key: "ok"},
		{Key: "bad", Diagnostics: []segment.Diagnostic{{Kind: segment.DiagSyntax, Message: "boom", Line: 1, Column: 3}}},
		{Key: "broken", Err: errors.New("fault")},
	}}

	got := table.FormatDiagnostics(res)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], " KEY"))
	assert.Contains(t, lines[2], "bad")
	assert.Contains(t, lines[2], "1:3")
	assert.Contains(t, lines[2], "boom")
	assert.Equal(t, strings.Repeat("-", len(lines[1])), lines[3])
	assert.Contains(t, lines[4], "fault")
	assert.NotContains(t, got, " ok ")
	for _, line := range lines[:6] {
		assert.LessOrEqual(t, len(line), 80)
	}

	assert.Empty(t, table.FormatDiagnostics(&runner.Result{Outcomes: []runner.Outcome{{Key: "ok"}}}))
}

func TestTableItemsTruncates(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	table := pretty.NewTableFormatter(styles, false, 80)

	long := strings.Repeat("word ", 40)
	res := &runner.Result{Outcomes: []runner.Outcome{{
		Key: "k",
		Items: []*segment.Item{
			{Text: long, ResourceID: "Plural.other"},
			{Text: "x", ResourceID: "ExpandedPlural.0.zero", Kind: segment.KindExpandedPlural},
		},
	}}}

	got := table.FormatItems(res)
	assert.Contains(t, got, "...")
	assert.Contains(t, got, "ExpandedPlural.0.zero")
	assert.Contains(t, got, "Legend: + = expanded")
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 80, line)
	}
}

func TestFormatTableSummary(t *testing.T) {
	t.Parallel()

	table := pretty.NewTableFormatter(pretty.NewStyles(false), false, 0)
	got := table.FormatTableSummary(runner.Stats{
		EntriesTotal:      4,
		ExpandedTotal:     2,
		DiagnosticsByKind: map[string]int{"lexical": 1},
	}, "12ms")
	assert.Equal(t, " 4 messages checked | 1 errors | 2 expanded | 12ms", got)
}
