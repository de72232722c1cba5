package icumsg_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/icumsg"
	"github.com/yaklabco/goicu/pkg/msgast"
	"github.com/yaklabco/goicu/pkg/plural"
	"github.com/yaklabco/goicu/pkg/segment"
)

const hostParty = `{gender_of_host, select,
                female {
                {num_guests, plural, offset:1
                    =0 {{host} does not give a party.}
                    =1 {{host} invites {guest} to her party.}
                    =2 {{host} invites {guest} and one other person to her party.}
                    other {{host} invites {guest} and # other people to her party.}}}
                male {
                {num_guests, plural, offset:1
                    =0 {{host} does not give a party.}
                    =1 {{host} invites {guest} to his party.}
                    =2 {{host} invites {guest} and one other person to his party.}
                    other {{host} invites {guest} and # other people to his party.}}}
                other {
                {num_guests, plural, offset:1
                    =0 {{host} does not give a party.}
                    =1 {{host} invites {guest} to their party.}
                    =2 {{host} invites {guest} and one other person to their party.}
                    other {{host} invites {guest} and # other people to their party.}}}}`

func TestParseDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantKinds []segment.DiagnosticKind
		wantMsgs  []string
		wantLine  int
	}{
		{
			name:      "unknown argument type",
			input:     "{0, TESTplural,\n  =1 {a}\n  other {b}}",
			wantKinds: []segment.DiagnosticKind{segment.DiagSyntax},
			wantLine:  1,
		},
		{
			name:      "unterminated double quote",
			input:     `Relaunch Microsoft" Edge within a day`,
			wantKinds: []segment.DiagnosticKind{segment.DiagLexical},
			wantLine:  1,
		},
		{
			name:      "missing other",
			input:     "{n, plural, one {a}}",
			wantKinds: []segment.DiagnosticKind{segment.DiagMissingOther},
			wantMsgs:  []string{"Missing 'other' plural selector in '{n, plural, one {a}}'."},
			wantLine:  1,
		},
		{
			name: "leading and trailing text",
			input: "You have {notifications, plural,\n" +
				"  zero {no notifications}\n" +
				"  one {one notification}\n" +
				"  =42 {a universal amount of notifications}\n" +
				"  other {# notifications}\n" +
				"}. Have a nice day, {name}!",
			wantKinds: []segment.DiagnosticKind{segment.DiagStrictMode, segment.DiagStrictMode},
			wantMsgs: []string{
				"Strict parse mode enabled. Content contains leading/trailing text 'You have '.",
				"Strict parse mode enabled. Content contains leading/trailing text '. Have a nice day, {name}!'.",
			},
			wantLine: 1,
		},
		{
			name:      "stray text only reported, missing other not checked",
			input:     "{n, plural, one {a}} days",
			wantKinds: []segment.DiagnosticKind{segment.DiagStrictMode},
			wantLine:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := icumsg.Parse(tt.input)
			assert.False(t, msg.Success())
			assert.False(t, msg.IsICU())
			assert.True(t, msg.Degraded())

			diags := msg.Diagnostics()
			require.Len(t, diags, len(tt.wantKinds))
			for i, kind := range tt.wantKinds {
				assert.Equal(t, kind, diags[i].Kind)
			}
			assert.Equal(t, tt.wantLine, diags[0].Line)
			if tt.wantMsgs != nil {
				assert.Equal(t, tt.wantMsgs, msg.Errors())
			}

			items, err := msg.Items()
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.input, items[0].Text)
			assert.Empty(t, items[0].ResourceID)

			out, err := msg.Compose(items, "fr")
			require.NoError(t, err)
			assert.Equal(t, tt.input, out)
		})
	}
}

func TestParseNullable(t *testing.T) {
	t.Parallel()

	_, err := icumsg.ParseNullable(nil)
	require.ErrorIs(t, err, segment.ErrUsage)

	input := "Hello {name}"
	msg, err := icumsg.ParseNullable(&input)
	require.NoError(t, err)
	assert.True(t, msg.Success())
	assert.False(t, msg.IsICU())
	assert.Equal(t, input, msg.Input())
}

func TestPlainAndEmptyMessages(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "Hello {name}, you have {count, number} items"} {
		msg := icumsg.Parse(input)
		assert.True(t, msg.Success(), input)
		assert.False(t, msg.IsICU(), input)

		items, err := msg.Items()
		require.NoError(t, err)
		out, err := msg.Compose(items, "ar")
		require.NoError(t, err)
		assert.Equal(t, input, out)
	}
}

func TestHostPartyMergedDuplicates(t *testing.T) {
	t.Parallel()

	msg := icumsg.Parse(hostParty, icumsg.WithMergeDuplicates(true))
	require.True(t, msg.Success(), msg.Errors())
	assert.True(t, msg.IsICU())

	items, err := msg.Items()
	require.NoError(t, err)
	require.Len(t, items, 25)

	assert.Equal(t, "{host} does not give a party.", items[0].Text)
	assert.Equal(t, "Plural.=0#0", items[0].ResourceID)
	assert.Equal(t, []string{"{host}"}, items[0].Locked)

	assert.Equal(t, "{host} invites {guest} and # other people to her party.", items[3].Text)
	assert.Equal(t, "Plural.other#0", items[3].ResourceID)
	assert.Equal(t, []string{"{host}", "{guest}", "#"}, items[3].Locked)

	assert.Equal(t, "{host} invites {guest} to his party.", items[4].Text)
	assert.Equal(t, "Plural.=1#1", items[4].ResourceID)
	assert.Equal(t, "Plural.other#2", items[9].ResourceID)

	var expandedIDs []string
	for _, item := range items[10:] {
		assert.True(t, item.IsExpanded())
		expandedIDs = append(expandedIDs, item.ResourceID)
	}
	assert.Equal(t, []string{
		"ExpandedPlural.female.zero", "ExpandedPlural.female.one", "ExpandedPlural.female.two",
		"ExpandedPlural.female.few", "ExpandedPlural.female.many",
		"ExpandedPlural.male.zero", "ExpandedPlural.male.one", "ExpandedPlural.male.two",
		"ExpandedPlural.male.few", "ExpandedPlural.male.many",
		"ExpandedPlural.other.zero", "ExpandedPlural.other.one", "ExpandedPlural.other.two",
		"ExpandedPlural.other.few", "ExpandedPlural.other.many",
	}, expandedIDs)

	out, err := msg.Compose(items, "my")
	require.NoError(t, err)
	assert.Equal(t, hostParty, out)
}

func TestHostPartyTranslatedExpansions(t *testing.T) {
	t.Parallel()

	msg := icumsg.Parse(hostParty, icumsg.WithMergeDuplicates(true))
	items, err := msg.Items()
	require.NoError(t, err)

	for _, item := range items {
		if item.IsExpanded() {
			item.Text = item.ResourceID
		}
	}

	out, err := msg.Compose(items, "")
	require.NoError(t, err)
	assert.Contains(t, out, "one {ExpandedPlural.female.one}\n                    other {")
	assert.Contains(t, out, "one {ExpandedPlural.other.one}")
	assert.NotContains(t, out, "ExpandedPlural.male.zero")

	reparsed := icumsg.Parse(out)
	assert.True(t, reparsed.Success(), reparsed.Errors())
}

func TestMergedComposeMapsDuplicatesBack(t *testing.T) {
	t.Parallel()

	input := "{g, select, female {Hi} male {Hi} other {Hello}}"
	msg := icumsg.Parse(input, icumsg.WithMergeDuplicates(true))
	items, err := msg.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	items[0].Text = "Salut"
	items[1].Text = "Bonjour"
	out, err := msg.Compose(items, "fr")
	require.NoError(t, err)
	assert.Equal(t, "{g, select, female {Salut} male {Salut} other {Bonjour}}", out)

	_, err = msg.Compose(items[:1], "fr")
	require.ErrorIs(t, err, segment.ErrUsage)
}

func TestHebrewQuotes(t *testing.T) {
	t.Parallel()

	input := "{MINUTES, plural, =1 {1ד'} one {#ח'} two {'{123}'} other {#ח'}}"
	msg := icumsg.Parse(input)
	require.True(t, msg.Success(), msg.Errors())
	assert.True(t, msg.IsICU())

	items, err := msg.Items()
	require.NoError(t, err)
	require.Len(t, items, 7)

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	assert.Equal(t, []string{"1ד'", "#ח'", "'{123}'", "#ח'", "#ח'", "#ח'", "#ח'"}, texts)

	out, err := msg.Compose(items, "he-IL")
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestNestedPluralIDs(t *testing.T) {
	t.Parallel()

	input := `{count, plural,
                =1 { 
                    {1, select, female {
                        {0, plural,
                        =1 { 1Relaunch Microsoft Edge within a day}
                        =2 { 1Relaunch Microsoft Edge within # days}
                        other { 1Relaunch Microsoft Edge within # days}}
                        } 
                other {allé}}
                }
                other { 2Relaunch Microsoft Edge within # days}}`

	msg := icumsg.Parse(input)
	require.True(t, msg.Success(), msg.Errors())

	items, err := msg.Items()
	require.NoError(t, err)
	require.Len(t, items, 15)
	assert.Equal(t, "ExpandedPlural.0.zero", items[5].ResourceID)
	assert.Equal(t, "ExpandedPlural.=1.female.zero", items[10].ResourceID)

	out, err := msg.Compose(items, "")
	require.NoError(t, err)
	assert.Greater(t, len(out), len(input))
	assert.True(t, icumsg.Parse(out).Success())
}

func TestItemExclusions(t *testing.T) {
	t.Parallel()

	input := `{additionalSenderCount, plural,
    one{
        {replyCount, plural,
            one{ 'one' # more reply from {sender1}, and # other {numNewClause}}
            other{ 'one' # more replies from {sender1}, and # other {numNewClause}}
        }}
    other{
        {replyCount, plural,
            one{ 'other' # more reply from {sender1}, and # others {numNewClause}}
            other{ 'other' # more replies from {sender1}, and # others {numNewClause}}
        }}
    }`

	msg := icumsg.Parse(input)
	require.True(t, msg.Success(), msg.Errors())

	items, err := msg.Items()
	require.NoError(t, err)
	require.Len(t, items, 12)

	assert.Equal(t, "Plural.one#0", items[0].ResourceID)
	assert.Equal(t, "one", items[0].Category)
	assert.Equal(t, plural.Default().Exclusions(plural.One), items[0].Exclusions)
	assert.Equal(t, "Plural.other#0", items[1].ResourceID)
	assert.Empty(t, items[1].Exclusions)
	assert.Equal(t, "ExpandedPlural.one.zero", items[4].ResourceID)
	assert.Equal(t, "!ar,!cy,!lv", items[4].Exclusions)
	assert.Equal(t, "ExpandedPlural.other.many", items[11].ResourceID)
}

func TestComposeCountMismatch(t *testing.T) {
	t.Parallel()

	msg := icumsg.Parse("{n, plural, one {# day} other {# days}}")
	items, err := msg.Items()
	require.NoError(t, err)

	_, err = msg.Compose(items[1:], "en")
	require.ErrorIs(t, err, segment.ErrUsage)
}

func TestWithRegistryAliases(t *testing.T) {
	t.Parallel()

	reg, err := plural.NewRegistry(plural.WithAliases(map[string]string{"x-klingon": "ar"}))
	require.NoError(t, err)

	input := "{n, plural, one {# day} other {# days}}"
	msg := icumsg.Parse(input, icumsg.WithRegistry(reg))
	items, err := msg.Items()
	require.NoError(t, err)

	out, err := msg.Compose(items, "x-klingon")
	require.NoError(t, err)
	assert.Equal(t, "{n, plural, one {# day} zero {# days} two {# days} few {# days} many {# days} other {# days}}", out)
}

type brokenParser struct{}

func (brokenParser) Parse(input string) (*msgast.Snapshot, error) {
	return nil, assert.AnError
}

func TestWithParserAndLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")

	msg := icumsg.Parse("{n, plural, other {#}}", icumsg.WithParser(brokenParser{}), icumsg.WithLogger(logger))
	assert.False(t, msg.Success())
	assert.Equal(t, []string{assert.AnError.Error()}, msg.Errors())
	assert.Nil(t, msg.Snapshot())
	assert.Contains(t, buf.String(), "message degraded to plain text")
}

// overlappingParser returns a select whose two branch texts share bytes.
type overlappingParser struct{}

func (overlappingParser) Parse(input string) (*msgast.Snapshot, error) {
	snap := msgast.NewSnapshot(input)
	root := msgast.NewMessage(msgast.Span{Start: 0, Stop: len(input) - 1})
	arg := msgast.NewComplexArg(root.Span, "g", msgast.ArgSelect)
	msgast.AppendChild(root, arg)

	for _, b := range []struct {
		selector string
		text     msgast.Span
	}{
		{selector: "a", text: msgast.Span{Start: 0, Stop: 3}},
		{selector: "other", text: msgast.Span{Start: 2, Stop: 5}},
	} {
		branch := msgast.NewBranch(b.text, b.selector, b.text)
		body := msgast.NewMessage(b.text)
		msgast.AppendChild(body, msgast.NewNode(msgast.NodeText, b.text))
		msgast.AppendChild(branch, body)
		msgast.AppendChild(arg, branch)
	}

	msgast.SetFile(root, snap)
	snap.Root = root
	return snap, nil
}

func TestOverlappingSpansFault(t *testing.T) {
	t.Parallel()

	msg := icumsg.Parse("abcdefgh", icumsg.WithParser(overlappingParser{}))
	require.True(t, msg.Success())

	_, err := msg.Items()
	require.Error(t, err)
	require.ErrorIs(t, err, segment.ErrInvariant)
	assert.Contains(t, err.Error(), "structural invariant violated: overlapping ranges: [0:4] and [2:6]")

	var invErr *segment.InvariantError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, []msgast.Span{{Start: 0, Stop: 3}, {Start: 2, Stop: 5}}, invErr.Spans)
}

func TestExpandPluralList(t *testing.T) {
	t.Parallel()

	m := expandMap(t, "=0", "none", "one", "# file", "other", "# files")

	items, err := icumsg.ExpandPluralList(m, "ru")
	require.NoError(t, err)

	var got []string
	for _, item := range items {
		got = append(got, item.ResourceID+"="+item.Text)
	}
	assert.Equal(t, []string{"=0=none", "one=# file", "few=# files", "many=# files", "other=# files"}, got)
	assert.True(t, items[2].IsExpanded())
	assert.False(t, items[1].IsExpanded())

	all, err := icumsg.ExpandPluralList(m, "")
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestIsLanguageSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, icumsg.IsLanguageSupported("fr-CA"))
	assert.True(t, icumsg.IsLanguageSupported("qps-ploc"))
	assert.False(t, icumsg.IsLanguageSupported("tlh"))
	assert.False(t, icumsg.IsLanguageSupported(""))
}
