package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"

	"github.com/go-enry/go-enry/v2"
)

// tomlAssign matches a bare or quoted TOML key followed by "=".
var tomlAssign = regexp.MustCompile(`^("[^"]*"|[A-Za-z0-9_.-]+)\s*=`)

// classifierCandidates are the languages offered to the go-enry classifier.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{"YAML", "JSON", "TOML", "Gettext Catalog"}

// classifierLanguages maps go-enry language names to catalog formats.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierLanguages = map[string]Format{
	"YAML":            FormatYAML,
	"JSON":            FormatJSON,
	"TOML":            FormatTOML,
	"Gettext Catalog": FormatPO,
}

// DetectFormat guesses the format of catalog content whose file name did
// not decide it. Structural markers are checked first; go-enry's
// classifier is consulted only when they are inconclusive.
func DetectFormat(path string, data []byte) (Format, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || enry.IsBinary(data) {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if format := detectByStructure(trimmed); format != "" {
		return format, nil
	}

	if lang, safe := enry.GetLanguageByClassifier(data, classifierCandidates); safe {
		if format, ok := classifierLanguages[lang]; ok {
			return format, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func detectByStructure(trimmed []byte) Format {
	if trimmed[0] == '{' {
		return FormatJSON
	}

	var first []byte
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if bytes.HasPrefix(line, []byte(`msgid "`)) {
			return FormatPO
		}
		if first == nil && len(line) > 0 && line[0] != '#' {
			first = line
		}
	}

	switch {
	case first == nil:
		return ""
	case first[0] == '[':
		return FormatTOML
	case tomlAssign.Match(first):
		return FormatTOML
	case bytes.Contains(first, []byte(":")):
		return FormatYAML
	default:
		return ""
	}
}
