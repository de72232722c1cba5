package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/reporter"
	"github.com/yaklabco/goicu/pkg/runner"
)

const days = "{days, plural, one {# day} other {# days}}"

func run(t *testing.T, opts runner.Options, messages map[string]string, order ...string) *runner.Result {
	t.Helper()

	jobs := make([]runner.Job, 0, len(order))
	for _, key := range order {
		jobs = append(jobs, runner.Job{Catalog: "messages.yml", Key: key, Message: messages[key]})
	}

	opts.Logger = logging.Discard()
	res, err := runner.New(opts).Run(context.Background(), jobs)
	require.NoError(t, err)
	return res
}

func checkResult(t *testing.T) *runner.Result {
	t.Helper()
	return run(t, runner.Options{Mode: runner.ModeCheck}, map[string]string{
		"greeting": "Hello",
		"files":    "{n, plural, one {# file}}",
	}, "greeting", "files")
}

func newReporter(t *testing.T, format reporter.Format, mutate func(*reporter.Options)) (reporter.Reporter, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = format
	opts.Color = "never"
	if mutate != nil {
		mutate(&opts)
	}

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	return rep, &buf
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "table", want: reporter.FormatTable},
		{input: "json", want: reporter.FormatJSON},
		{input: "yml", want: reporter.FormatYAML},
		{input: "yaml", want: reporter.FormatYAML},
		{input: "diff", want: reporter.FormatDiff},
		{input: " JSON ", want: reporter.FormatJSON},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
	assert.False(t, reporter.Format("xml").IsValid())
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.FormatText, func(o *reporter.Options) { o.Compact = true })
	n, err := rep.Report(context.Background(), checkResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out := buf.String()
	assert.Contains(t, out, "files")
	assert.Contains(t, out, "missing-other")
	assert.NotContains(t, out, "greeting")
	assert.Contains(t, out, "1 issue")
}

func TestTextReporterSummaryBlock(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.FormatText, nil)
	_, err := rep.Report(context.Background(), checkResult(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Check completed with warnings")
}

func TestTextReporterItemsAndOutput(t *testing.T) {
	t.Parallel()

	res := run(t, runner.Options{Mode: runner.ModeCompose, Language: "fr"},
		map[string]string{"days": days}, "days")

	rep, buf := newReporter(t, reporter.FormatText, func(o *reporter.Options) {
		o.ShowItems = true
		o.ShowOutput = true
		o.Compact = true
	})
	n, err := rep.Report(context.Background(), res)
	require.NoError(t, err)
	assert.Zero(t, n)

	out := buf.String()
	assert.Contains(t, out, "ExpandedPlural.0.many")
	assert.Contains(t, out, "=> {days, plural, one {# day} many {# days} other {# days}}")
	assert.Contains(t, out, "1 changed")
}

func TestTextReporterEmpty(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.FormatText, nil)
	n, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), "No messages to check.")
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	t.Run("issues", func(t *testing.T) {
		t.Parallel()

		rep, buf := newReporter(t, reporter.FormatTable, nil)
		n, err := rep.Report(context.Background(), checkResult(t))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Contains(t, buf.String(), "KIND")
		assert.Contains(t, buf.String(), "missing-other")
	})

	t.Run("clean", func(t *testing.T) {
		t.Parallel()

		res := run(t, runner.Options{}, map[string]string{"a": "Hello"}, "a")
		rep, buf := newReporter(t, reporter.FormatTable, nil)
		n, err := rep.Report(context.Background(), res)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Contains(t, buf.String(), "All messages passed!")
	})
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.FormatJSON, func(o *reporter.Options) { o.Compact = true })
	n, err := rep.Report(context.Background(), checkResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var doc reporter.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "1", doc.Version)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "greeting", doc.Entries[0].Key)
	assert.Empty(t, doc.Entries[0].Diagnostics)

	require.Len(t, doc.Entries[1].Diagnostics, 1)
	assert.Equal(t, "missing-other", doc.Entries[1].Diagnostics[0].Kind)

	assert.Equal(t, 2, doc.Summary.Messages)
	assert.Equal(t, 1, doc.Summary.TotalIssues)
	assert.Equal(t, map[string]int{"missing-other": 1}, doc.Summary.ByKind)
}

func TestYAMLReporterRoundTrip(t *testing.T) {
	t.Parallel()

	res := run(t, runner.Options{Mode: runner.ModeExtract},
		map[string]string{"days": days, "hello": "Hello {name}"}, "days", "hello")

	rep, buf := newReporter(t, reporter.FormatYAML, nil)
	_, err := rep.Report(context.Background(), res)
	require.NoError(t, err)

	var got reporter.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	want := reporter.BuildDocument(res)
	if diff := cmp.Diff(want, &got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("YAML document mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, got.Summary.ExpandedItems)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	res := run(t, runner.Options{Mode: runner.ModeCompose, Language: "fr"},
		map[string]string{"days": days, "hello": "Hello"}, "days", "hello")

	rep, buf := newReporter(t, reporter.FormatDiff, nil)
	n, err := rep.Report(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out := buf.String()
	assert.Contains(t, out, "--- a/messages.yml:days")
	assert.Contains(t, out, "-"+days)
	assert.Contains(t, out, "+{days, plural, one {# day} many {# days} other {# days}}")
	assert.NotContains(t, out, "messages.yml:hello")
	assert.Contains(t, out, "1 message changed, 1 insertion(+), 1 deletion(-)")
}
