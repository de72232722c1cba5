package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/catalog"
	"github.com/yaklabco/goicu/pkg/runner"
	"github.com/yaklabco/goicu/pkg/segment"
)

const days = "{days, plural, one {# day} other {# days}}"

func jobs(messages ...string) []runner.Job {
	out := make([]runner.Job, len(messages))
	for i, m := range messages {
		out[i] = runner.Job{Key: fmt.Sprintf("k%d", i), Message: m}
	}
	return out
}

func newRunner(opts runner.Options) *runner.Runner {
	opts.Logger = logging.Discard()
	return runner.New(opts)
}

func TestRunCheckMode(t *testing.T) {
	t.Parallel()

	r := newRunner(runner.Options{Workers: 3})
	res, err := r.Run(context.Background(), jobs(
		"Hello",
		days,
		"{n, plural, one {x}}",
		"text {n, plural, one {x} other {y}}",
	))
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 4)

	for i, o := range res.Outcomes {
		assert.Equal(t, fmt.Sprintf("k%d", i), o.Key)
		assert.Empty(t, o.Items, "check mode collects no items")
	}

	assert.False(t, res.Outcomes[0].IsICU)
	assert.True(t, res.Outcomes[1].IsICU)
	assert.Empty(t, res.Outcomes[1].Diagnostics)
	require.Len(t, res.Outcomes[2].Diagnostics, 1)
	assert.Equal(t, segment.DiagMissingOther, res.Outcomes[2].Diagnostics[0].Kind)
	require.Len(t, res.Outcomes[3].Diagnostics, 1)
	assert.Equal(t, segment.DiagStrictMode, res.Outcomes[3].Diagnostics[0].Kind)

	assert.Equal(t, 4, res.Stats.EntriesTotal)
	assert.Equal(t, 4, res.Stats.EntriesProcessed)
	assert.Equal(t, 2, res.Stats.EntriesWithDiagnostics)
	assert.Equal(t, 2, res.Stats.DiagnosticsTotal)
	assert.Equal(t, 1, res.Stats.DiagnosticsByKind["missing-other"])
	assert.Equal(t, 1, res.Stats.DiagnosticsByKind["strict-mode"])
	assert.True(t, res.HasDiagnostics())
	assert.False(t, res.HasErrors())
	assert.NoError(t, runner.Errors(res))
}

func TestResultLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		stats           runner.Stats
		wantDiagnostics bool
		wantErrors      bool
	}{
		{name: "clean"},
		{
			name:            "syntax diagnostic",
			stats:           runner.Stats{DiagnosticsTotal: 1, DiagnosticsByKind: map[string]int{"syntax": 1}},
			wantDiagnostics: true,
			wantErrors:      true,
		},
		{
			name:            "lexical diagnostic",
			stats:           runner.Stats{DiagnosticsTotal: 2, DiagnosticsByKind: map[string]int{"lexical": 1, "missing-other": 1}},
			wantDiagnostics: true,
			wantErrors:      true,
		},
		{
			name:            "warnings only",
			stats:           runner.Stats{DiagnosticsTotal: 1, DiagnosticsByKind: map[string]int{"strict-mode": 1}},
			wantDiagnostics: true,
		},
		{
			name:       "fault",
			stats:      runner.Stats{EntriesErrored: 1},
			wantErrors: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := &runner.Result{Stats: tt.stats}
			assert.Equal(t, tt.wantDiagnostics, res.HasDiagnostics())
			assert.Equal(t, tt.wantErrors, res.HasErrors())
		})
	}

	var nilResult *runner.Result
	assert.False(t, nilResult.HasErrors())
	assert.False(t, nilResult.HasDiagnostics())
}

func TestRunExtractMode(t *testing.T) {
	t.Parallel()

	r := newRunner(runner.Options{Mode: runner.ModeExtract})
	res, err := r.Run(context.Background(), jobs(days))
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 1)

	items := res.Outcomes[0].Items
	require.Len(t, items, 6)
	assert.Equal(t, "Plural.one", items[0].ResourceID)
	assert.Equal(t, "Plural.other", items[1].ResourceID)
	assert.True(t, items[2].IsExpanded())
	assert.Equal(t, 6, res.Stats.ItemsTotal)
	assert.Equal(t, 4, res.Stats.ExpandedTotal)
	assert.Empty(t, res.Outcomes[0].Output)
}

func TestRunComposeMode(t *testing.T) {
	t.Parallel()

	r := newRunner(runner.Options{Mode: runner.ModeCompose, Language: "fr", Workers: 2})
	res, err := r.Run(context.Background(), jobs(days, "Hello"))
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 2)

	fr := res.Outcomes[0]
	assert.Equal(t, "{days, plural, one {# day} many {# days} other {# days}}", fr.Output)
	assert.True(t, fr.Changed())
	assert.Contains(t, fr.Diff.String(), "+{days, plural, one {# day} many {# days} other {# days}}")

	plain := res.Outcomes[1]
	assert.Equal(t, "Hello", plain.Output)
	assert.False(t, plain.Changed())

	assert.Equal(t, 1, res.Stats.EntriesChanged)
}

func TestRunPseudoMode(t *testing.T) {
	t.Parallel()

	r := newRunner(runner.Options{Mode: runner.ModePseudo})
	res, err := r.Run(context.Background(), jobs("Hello"))
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 1)

	out := res.Outcomes[0].Output
	assert.Equal(t, "[Ĥéļļö~~]", out)
	assert.True(t, res.Outcomes[0].Changed())
}

func TestRunEmpty(t *testing.T) {
	t.Parallel()

	res, err := newRunner(runner.Options{}).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Outcomes)
	assert.Zero(t, res.Stats.EntriesTotal)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newRunner(runner.Options{Workers: 1}).Run(ctx, jobs(days, days, days))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.LessOrEqual(t, len(res.Outcomes), 3)
}

func TestRunCatalogs(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Parse([]byte("greeting: Hello\ncount: \""+days+"\"\n"), catalog.FormatYAML)
	require.NoError(t, err)
	cat.Path = "messages.yml"

	res, err := newRunner(runner.Options{}).RunCatalogs(context.Background(), cat)
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 2)
	assert.Equal(t, "greeting", res.Outcomes[0].Key)
	assert.Equal(t, "count", res.Outcomes[1].Key)
	assert.Equal(t, "messages.yml", res.Outcomes[1].Catalog)
	assert.Equal(t, 1, res.Stats.CatalogsLoaded)
	assert.Equal(t, 1, res.Stats.EntriesICU)
}

func TestRunPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"x": "Hi", "n": 3}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.toml"), []byte("y = \"Bye\"\n"), 0o600))

	r := newRunner(runner.Options{WorkingDir: dir})
	res, err := r.RunPaths(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.CatalogsLoaded)
	require.Len(t, res.Outcomes, 2)
	assert.Equal(t, "x", res.Outcomes[0].Key)
	assert.Equal(t, "y", res.Outcomes[1].Key)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "check", runner.ModeCheck.String())
	assert.Equal(t, "extract", runner.ModeExtract.String())
	assert.Equal(t, "compose", runner.ModeCompose.String())
	assert.Equal(t, "pseudo", runner.ModePseudo.String())
}
