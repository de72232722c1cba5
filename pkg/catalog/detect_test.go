package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goicu/pkg/catalog"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want catalog.Format
	}{
		{name: "json object", data: "  {\"a\": \"b\"}", want: catalog.FormatJSON},
		{name: "po", data: "# comment\nmsgid \"a\"\nmsgstr \"b\"\n", want: catalog.FormatPO},
		{name: "toml table", data: "[mail]\nunread = \"x\"\n", want: catalog.FormatTOML},
		{name: "toml assignment", data: "# header\ntitle = \"Inbox\"\n", want: catalog.FormatTOML},
		{name: "toml quoted key", data: "\"a.b\" = \"x\"\n", want: catalog.FormatTOML},
		{name: "yaml", data: "title: Inbox\nmail:\n  unread: x\n", want: catalog.FormatYAML},
		{name: "yaml with equals in value", data: "cmp: a = b\n", want: catalog.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := catalog.DetectFormat("messages.txt", []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatRejects(t *testing.T) {
	t.Parallel()

	for name, data := range map[string]string{
		"empty":  "",
		"blank":  " \n\t\n",
		"binary": "a\x00b\x00c",
	} {
		_, err := catalog.DetectFormat("messages.dat", []byte(data))
		require.ErrorIs(t, err, catalog.ErrUnknownFormat, name)
	}
}

func TestLoadDetectsFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.txt")
	require.NoError(t, os.WriteFile(path, []byte("greeting: Hello {name}\n"), 0o600))

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.FormatYAML, cat.Format)

	msg, ok := cat.Lookup("greeting")
	require.True(t, ok)
	assert.Equal(t, "Hello {name}", msg)
}
