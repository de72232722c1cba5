package icumsg

import (
	"fmt"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/compose"
	"github.com/yaklabco/goicu/pkg/expand"
	"github.com/yaklabco/goicu/pkg/fix"
	"github.com/yaklabco/goicu/pkg/msgast"
	"github.com/yaklabco/goicu/pkg/plural"
	"github.com/yaklabco/goicu/pkg/segment"
)

// Items returns the translatable items: one per segment (one per distinct
// text when merging duplicates), followed by the synthesized plural items
// of every group. Synthesized items are shared with the message, so
// editing their text changes what Compose inserts.
func (m *Message) Items() ([]*segment.Item, error) {
	spans := make([]msgast.Span, len(m.res.Segments))
	for i, seg := range m.res.Segments {
		spans[i] = seg.Span
	}
	if err := fix.CheckSpans(spans, len(m.input)); err != nil {
		return nil, &segment.InvariantError{Msg: err.Error(), Spans: spans}
	}

	items := make([]*segment.Item, 0, len(m.res.Segments))
	seen := make(map[string]bool, len(m.res.Segments))
	for _, seg := range m.res.Segments {
		if m.opts.merge {
			if seen[seg.Text] {
				continue
			}
			seen[seg.Text] = true
		}
		items = append(items, m.itemFor(seg))
	}

	for _, g := range m.res.Groups {
		items = append(items, g.Expanded...)
	}

	return items, nil
}

func (m *Message) itemFor(seg *segment.Segment) *segment.Item {
	item := &segment.Item{
		Text:       seg.Text,
		ResourceID: seg.ResourceID,
		Kind:       segment.KindDefault,
		Locked:     append([]string(nil), seg.Locked...),
	}
	if seg.GroupKind == segment.GroupPlural {
		item.Category = seg.Selector
		if c, ok := plural.ParseCategory(seg.Selector); ok {
			item.Exclusions = m.opts.registry.Exclusions(c)
		}
	}
	return item
}

// Compose rebuilds the message from items for the language tag lang ("" is
// English). Items are matched to segments by position after dropping
// synthesized items.
func (m *Message) Compose(items []*segment.Item, lang string) (string, error) {
	return m.ComposeProfile(items, m.opts.registry.Resolve(lang))
}

// ComposeProfile is Compose for an already resolved plural profile.
func (m *Message) ComposeProfile(items []*segment.Item, profile plural.Profile) (string, error) {
	var texts []string
	for _, item := range items {
		if !item.IsExpanded() {
			texts = append(texts, item.Text)
		}
	}

	if m.opts.merge {
		var err error
		texts, err = m.unmerge(texts)
		if err != nil {
			return "", err
		}
	}

	out, err := compose.Compose(m.input, texts, m.res, profile)
	if err != nil {
		return "", err
	}

	m.opts.logger.Debug("composed message",
		logging.FieldLang, profile.Tag,
		logging.FieldSegments, len(texts))

	return out, nil
}

// unmerge expands one text per distinct original segment text back to one
// text per segment.
func (m *Message) unmerge(texts []string) ([]string, error) {
	index := make(map[string]int, len(m.res.Segments))
	for _, seg := range m.res.Segments {
		if _, ok := index[seg.Text]; !ok {
			index[seg.Text] = len(index)
		}
	}
	if len(texts) != len(index) {
		return nil, &segment.UsageError{
			Op:  "compose",
			Msg: fmt.Sprintf("got %d texts for %d distinct segments", len(texts), len(index)),
		}
	}

	out := make([]string, len(m.res.Segments))
	for i, seg := range m.res.Segments {
		out[i] = texts[index[seg.Text]]
	}
	return out, nil
}

// ExpandPluralList turns a category map into items without parsing a
// message. An empty lang keeps every category.
func ExpandPluralList(m *expand.OrderedMap, lang string, opts ...Option) ([]*segment.Item, error) {
	o := newOptions(opts)
	if lang == "" {
		return expand.List(m, nil, o.registry)
	}
	profile := o.registry.Resolve(lang)
	return expand.List(m, &profile, o.registry)
}

// IsLanguageSupported reports whether the default plural table knows tag
// or one of its ancestors.
func IsLanguageSupported(tag string) bool {
	return plural.Default().IsLanguageSupported(tag)
}
