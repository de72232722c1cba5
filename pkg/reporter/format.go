package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format names a report layout.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatDiff  Format = "diff"
)

//nolint:gochecknoglobals // Read-only lookup table.
var formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML, FormatDiff}

// ParseFormat accepts a format name in any case. Empty means text and
// "yml" is an alias for yaml.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}

	if f := Format(name); f.IsValid() {
		return f, nil
	}

	valid := make([]string, len(formats))
	for i, f := range formats {
		valid[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(valid, ", "))
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known formats.
func (f Format) IsValid() bool {
	return slices.Contains(formats, f)
}
