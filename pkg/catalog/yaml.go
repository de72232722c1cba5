package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML walks the node tree so mapping order is kept.
func parseYAML(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML catalog: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse YAML catalog: root must be a mapping, got %s", root.ShortTag())
	}

	var entries []Entry
	collectYAML(root, "", &entries)
	return entries, nil
}

func collectYAML(node *yaml.Node, prefix string, entries *[]Entry) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := joinKey(prefix, node.Content[i].Value)
		val := node.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}

		switch val.Kind {
		case yaml.MappingNode:
			collectYAML(val, key, entries)
		case yaml.ScalarNode:
			if val.ShortTag() == "!!str" {
				*entries = append(*entries, Entry{Key: key, Message: val.Value})
			}
		}
	}
}
