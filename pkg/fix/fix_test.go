package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goicu/pkg/fix"
	"github.com/yaklabco/goicu/pkg/msgast"
)

func TestEditBuilderApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		build func(b *fix.EditBuilder)
		want  string
	}{
		{
			name:  "no edits",
			input: "Hello {name}",
			build: func(*fix.EditBuilder) {},
			want:  "Hello {name}",
		},
		{
			name:  "replace prefix",
			input: "Hello {name}",
			build: func(b *fix.EditBuilder) {
				b.Replace(0, 6, "Bonjour ")
			},
			want: "Bonjour {name}",
		},
		{
			name:  "insert and delete",
			input: "{n, plural, one {#} other {# x}}",
			build: func(b *fix.EditBuilder) {
				b.Replace(12, 20, "")
				b.Replace(12, 12, "few {#} ")
			},
			want: "{n, plural, few {#} other {# x}}",
		},
		{
			name:  "unsorted edits",
			input: "abc",
			build: func(b *fix.EditBuilder) {
				b.Replace(2, 3, "C")
				b.Replace(0, 1, "A")
			},
			want: "AbC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := fix.NewEditBuilder()
			tt.build(b)
			got, err := b.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareEditsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantMsg string
	}{
		{
			name:    "negative start",
			edits:   []fix.TextEdit{{Start: -1, End: 2}},
			wantMsg: "start offset is negative",
		},
		{
			name:    "end before start",
			edits:   []fix.TextEdit{{Start: 4, End: 2}},
			wantMsg: "end offset is before start offset",
		},
		{
			name:    "past the end",
			edits:   []fix.TextEdit{{Start: 2, End: 11}},
			wantMsg: "exceeds length 10",
		},
		{
			name:    "overlap",
			edits:   []fix.TextEdit{{Start: 3, End: 6}, {Start: 0, End: 4}},
			wantMsg: "overlapping ranges: [0:4] and [3:6]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fix.PrepareEdits(tt.edits, 10)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCheckSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spans   []msgast.Span
		wantErr bool
	}{
		{name: "none", spans: nil},
		{name: "adjacent", spans: []msgast.Span{{Start: 0, Stop: 3}, {Start: 4, Stop: 9}}},
		{name: "empty span", spans: []msgast.Span{{Start: 4, Stop: 3}, {Start: 4, Stop: 5}}},
		{name: "shared byte", spans: []msgast.Span{{Start: 0, Stop: 4}, {Start: 4, Stop: 9}}, wantErr: true},
		{name: "malformed", spans: []msgast.Span{{Start: 5, Stop: 2}}, wantErr: true},
		{name: "out of range", spans: []msgast.Span{{Start: 8, Stop: 10}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.CheckSpans(tt.spans, 10)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	t.Run("equal texts", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, fix.GenerateDiff("greeting", "same", "same"))
	})

	t.Run("single line", func(t *testing.T) {
		t.Parallel()

		d := fix.GenerateDiff("days", "{n, plural, one {#} other {#}}", "{n, plural, other {#}}")
		require.NotNil(t, d)
		assert.True(t, d.HasChanges())
		assert.Equal(t, 1, d.Added)
		assert.Equal(t, 1, d.Removed)
		assert.Equal(t,
			"--- a/days\n+++ b/days\n@@ -1,1 +1,1 @@\n-{n, plural, one {#} other {#}}\n+{n, plural, other {#}}\n",
			d.String())
	})

	t.Run("CRLF lines with context", func(t *testing.T) {
		t.Parallel()

		before := "{n, plural,\r\n  one {a}\r\n  other {b}}"
		after := "{n, plural,\r\n  one {a}\r\n  many {b}\r\n  other {b}}"
		d := fix.GenerateDiff("n", before, after)
		require.NotNil(t, d)
		require.Len(t, d.Hunks, 1)
		assert.Equal(t, 1, d.Added)
		assert.Equal(t, 0, d.Removed)

		h := d.Hunks[0]
		assert.Equal(t, 1, h.OldStart)
		assert.Equal(t, 3, h.OldCount)
		assert.Equal(t, 4, h.NewCount)
		assert.Equal(t, fix.DiffLine{Kind: fix.LineAdd, Text: "  many {b}"}, h.Lines[2])
	})

	t.Run("distant changes split into hunks", func(t *testing.T) {
		t.Parallel()

		before := "a\nb\nc\nd\ne\nf\ng\nh\ni\nj"
		after := "A\nb\nc\nd\ne\nf\ng\nh\ni\nJ"
		d := fix.GenerateDiff("x", before, after)
		require.NotNil(t, d)
		require.Len(t, d.Hunks, 2)
		assert.Equal(t, 7, d.Hunks[1].OldStart)
	})
}
