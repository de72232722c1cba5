package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goicu/pkg/catalog"
)

func TestParseFormats(t *testing.T) {
	t.Parallel()

	want := []catalog.Entry{
		{Key: "title", Message: "Inbox"},
		{Key: "mail.unread", Message: "{n, plural, one {# message} other {# messages}}"},
		{Key: "mail.greeting", Message: "Hello {name}"},
	}

	tests := []struct {
		name   string
		format catalog.Format
		data   string
	}{
		{
			name:   "yaml",
			format: catalog.FormatYAML,
			data: `title: Inbox
count: 3
mail:
  unread: "{n, plural, one {# message} other {# messages}}"
  greeting: Hello {name}
`,
		},
		{
			name:   "json",
			format: catalog.FormatJSON,
			data: `{
  "title": "Inbox",
  "count": 3,
  "mail": {
    "unread": "{n, plural, one {# message} other {# messages}}",
    "greeting": "Hello {name}"
  }
}`,
		},
		{
			name:   "toml",
			format: catalog.FormatTOML,
			data: `title = "Inbox"
count = 3

[mail]
unread = "{n, plural, one {# message} other {# messages}}"
greeting = "Hello {name}"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, err := catalog.Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.format, cat.Format)
			assert.Equal(t, want, cat.Entries)
		})
	}
}

func TestParsePO(t *testing.T) {
	t.Parallel()

	data := `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "unread"
msgstr "{n, plural, one {# message} other {# messages}}"
`
	cat, err := catalog.Parse([]byte(data), catalog.FormatPO)
	require.NoError(t, err)

	msg, ok := cat.Lookup("unread")
	require.True(t, ok)
	assert.Equal(t, "{n, plural, one {# message} other {# messages}}", msg)

	_, ok = cat.Lookup("")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format catalog.Format
		data   string
	}{
		{name: "yaml sequence root", format: catalog.FormatYAML, data: "- a\n- b\n"},
		{name: "broken yaml", format: catalog.FormatYAML, data: "a: [b\n"},
		{name: "broken json", format: catalog.FormatJSON, data: `{"a": `},
		{name: "json array root", format: catalog.FormatJSON, data: `["a"]`},
		{name: "broken toml", format: catalog.FormatTOML, data: "a = \n"},
		{name: "unknown format", format: catalog.Format("xliff"), data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]catalog.Format{
		"en.yml":       catalog.FormatYAML,
		"en.YAML":      catalog.FormatYAML,
		"locales.json": catalog.FormatJSON,
		"fr.toml":      catalog.FormatTOML,
		"messages.pot": catalog.FormatPO,
	}
	for path, want := range tests {
		got, err := catalog.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := catalog.FormatFromPath("strings.xml")
	require.ErrorIs(t, err, catalog.ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "en.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: one\nb: two\n"), 0o600))

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cat.Path)
	assert.Equal(t, 2, cat.Len())

	_, err = catalog.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFromMessages(t *testing.T) {
	t.Parallel()

	cat := catalog.FromMessages("a", "b")
	assert.Equal(t, []catalog.Entry{{Key: "0", Message: "a"}, {Key: "1", Message: "b"}}, cat.Entries)
}
