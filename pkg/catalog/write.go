package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// tree is a catalog regrouped by key segment. Children keep entry order.
type tree struct {
	value    string
	leaf     bool
	keys     []string
	children map[string]*tree
}

func (t *tree) child(name string) *tree {
	if c, ok := t.children[name]; ok {
		return c
	}
	if t.children == nil {
		t.children = make(map[string]*tree)
	}
	c := &tree{}
	t.children[name] = c
	t.keys = append(t.keys, name)
	return c
}

// buildTree nests entries by their dot-joined keys, the inverse of the
// flattening the readers do.
func buildTree(entries []Entry) (*tree, error) {
	root := &tree{}
	for _, e := range entries {
		parts := strings.Split(e.Key, ".")
		node := root
		for i, part := range parts {
			if part == "" {
				return nil, fmt.Errorf("write catalog: invalid key %q", e.Key)
			}
			if node.leaf {
				return nil, fmt.Errorf("write catalog: key %q conflicts with message %q",
					e.Key, strings.Join(parts[:i], "."))
			}
			node = node.child(part)
		}
		if node.leaf || len(node.keys) > 0 {
			return nil, fmt.Errorf("write catalog: duplicate or conflicting key %q", e.Key)
		}
		node.leaf = true
		node.value = e.Message
	}
	return root, nil
}

// Marshal encodes cat in format. Nested keys become nested tables. YAML
// and JSON keep entry order; TOML tables come out sorted. PO catalogs are
// read-only.
func Marshal(cat *Catalog, format Format) ([]byte, error) {
	root, err := buildTree(cat.Entries)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		return marshalYAML(root)
	case FormatJSON:
		return marshalJSON(root)
	case FormatTOML:
		return marshalTOML(root)
	default:
		return nil, fmt.Errorf("%w: cannot write %q", ErrUnknownFormat, format)
	}
}

func marshalYAML(root *tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(root)); err != nil {
		return nil, fmt.Errorf("encode YAML catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode YAML catalog: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode(t *tree) *yaml.Node {
	if t.leaf {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.value}
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range t.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			yamlNode(t.children[k]))
	}
	return node
}

// marshalJSON writes objects member by member; encoding/json would sort
// map keys.
func marshalJSON(root *tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, root, ""); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, t *tree, indent string) error {
	if t.leaf {
		return writeJSONString(buf, t.value)
	}
	if len(t.keys) == 0 {
		buf.WriteString("{}")
		return nil
	}

	inner := indent + "  "
	buf.WriteString("{\n")
	for i, k := range t.keys {
		buf.WriteString(inner)
		if err := writeJSONString(buf, k); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := writeJSON(buf, t.children[k], inner); err != nil {
			return err
		}
		if i < len(t.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent + "}")
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode JSON catalog: %w", err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

func marshalTOML(root *tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(tomlValue(root)); err != nil {
		return nil, fmt.Errorf("encode TOML catalog: %w", err)
	}
	return buf.Bytes(), nil
}

func tomlValue(t *tree) any {
	if t.leaf {
		return t.value
	}
	table := make(map[string]any, len(t.keys))
	for _, k := range t.keys {
		table[k] = tomlValue(t.children[k])
	}
	return table
}
