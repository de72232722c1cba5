package segment

import "slices"

// ItemKind separates authored items from synthesized ones.
type ItemKind uint8

// Item kinds.
const (
	KindDefault ItemKind = iota
	KindExpandedPlural
)

func (k ItemKind) String() string {
	if k == KindExpandedPlural {
		return "ExpandedPlural"
	}
	return "Default"
}

// MarshalText renders the kind by name.
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Item is a translatable fragment as seen by callers. Text is the only
// field callers are expected to change.
type Item struct {
	Text       string   `json:"text" yaml:"text"`
	ResourceID string   `json:"resource_id" yaml:"resource_id"`
	Category   string   `json:"category,omitempty" yaml:"category,omitempty"`
	Exclusions string   `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`
	Kind       ItemKind `json:"kind" yaml:"kind"`
	Locked     []string `json:"locked,omitempty" yaml:"locked,omitempty"`
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	out := *i
	out.Locked = slices.Clone(i.Locked)
	return &out
}

// IsExpanded reports whether the item was synthesized.
func (i *Item) IsExpanded() bool {
	return i.Kind == KindExpandedPlural
}
