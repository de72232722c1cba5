// Package catalog reads message catalogs: ordered key to ICU message
// tables stored as YAML, JSON, TOML or gettext PO files.
//
// Nested tables are flattened to dot-joined keys. Entries keep the order
// of the source file, except for PO files, whose entries are sorted by
// msgid.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a catalog file format.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatPO   Format = "po"
)

// ErrUnknownFormat is returned for file extensions no reader handles.
var ErrUnknownFormat = errors.New("unknown catalog format")

// Entry is one message of a catalog.
type Entry struct {
	// Key is the dot-joined path of the message (the msgid for PO files).
	Key string `json:"key" yaml:"key"`

	// Message is the ICU message text.
	Message string `json:"message" yaml:"message"`
}

// Catalog is an ordered list of entries.
type Catalog struct {
	Path    string
	Format  Format
	Entries []Entry
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.Entries)
}

// Lookup returns the message stored under key.
func (c *Catalog) Lookup(key string) (string, bool) {
	for _, e := range c.Entries {
		if e.Key == key {
			return e.Message, true
		}
	}
	return "", false
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".po", ".pot":
		return FormatPO, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads the catalog at path, choosing the reader by extension and
// falling back to DetectFormat for unknown extensions.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		format, err = DetectFormat(path, data)
		if err != nil {
			return nil, err
		}
	}

	cat, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cat.Path = path
	return cat, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Catalog, error) {
	var (
		entries []Entry
		err     error
	)

	switch format {
	case FormatYAML:
		entries, err = parseYAML(data)
	case FormatJSON:
		entries, err = parseJSON(data)
	case FormatTOML:
		entries, err = parseTOML(data)
	case FormatPO:
		entries, err = parsePO(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return &Catalog{Format: format, Entries: entries}, nil
}

// FromMessages builds an in-memory catalog, one entry per message, keyed
// by position.
func FromMessages(messages ...string) *Catalog {
	cat := &Catalog{}
	for i, msg := range messages {
		cat.Entries = append(cat.Entries, Entry{Key: fmt.Sprintf("%d", i), Message: msg})
	}
	return cat
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
