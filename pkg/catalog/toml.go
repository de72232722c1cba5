package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// parseTOML takes key order from the decoder metadata.
func parseTOML(data []byte) ([]Entry, error) {
	var tree map[string]any
	md, err := toml.Decode(string(data), &tree)
	if err != nil {
		return nil, fmt.Errorf("parse TOML catalog: %w", err)
	}

	var entries []Entry
	for _, key := range md.Keys() {
		if md.Type(key...) != "String" {
			continue
		}
		value, ok := lookupTOML(tree, key)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: key.String(), Message: value})
	}
	return entries, nil
}

func lookupTOML(tree map[string]any, key toml.Key) (string, bool) {
	var node any = tree
	for _, part := range key {
		table, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node = table[part]
	}
	s, ok := node.(string)
	return s, ok
}
