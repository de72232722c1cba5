// Package expand synthesizes plural branches that a message author left
// out, using the text of the "other" branch.
package expand

import (
	"slices"
	"strings"

	"github.com/yaklabco/goicu/pkg/plural"
	"github.com/yaklabco/goicu/pkg/resid"
	"github.com/yaklabco/goicu/pkg/segment"
)

// ResourcePrefix starts the resource id of every synthesized item.
const ResourcePrefix = "ExpandedPlural"

// Group fills g.Expanded with one item per standard category g does not
// declare, cloning the text and locked substrings of its "other" branch.
// Expansion does not depend on any target language. A group whose "other"
// branch holds no translatable text gets no items.
func Group(g *segment.Group, segments []*segment.Segment, reg *plural.Registry) error {
	if !g.HasOther() {
		return &segment.UsageError{Op: "expand", Msg: "plural group " + g.ID + " has no 'other' branch"}
	}

	g.Expanded = nil

	source := otherSegment(g, segments)
	if source == nil {
		return nil
	}

	for _, c := range plural.Categories() {
		if g.HasCategory(c) {
			continue
		}
		g.Expanded = append(g.Expanded, &segment.Item{
			Text:       source.Text,
			ResourceID: ResourcePrefix + "." + g.ParentID + "." + c.String(),
			Category:   c.String(),
			Exclusions: reg.Exclusions(c),
			Kind:       segment.KindExpandedPlural,
			Locked:     slices.Clone(source.Locked),
		})
	}

	return nil
}

// Groups expands every group and then makes the synthesized resource ids
// unique across all of them.
func Groups(groups []*segment.Group, segments []*segment.Segment, reg *plural.Registry) error {
	for _, g := range groups {
		if err := Group(g, segments, reg); err != nil {
			return err
		}
	}

	var all []*segment.Item
	for _, g := range groups {
		all = append(all, g.Expanded...)
	}
	resid.Disambiguate(all,
		func(item *segment.Item) string { return item.ResourceID },
		func(item *segment.Item, id string) { item.ResourceID = id })

	return nil
}

// otherSegment returns the first segment written directly in g's "other"
// branch.
func otherSegment(g *segment.Group, segments []*segment.Segment) *segment.Segment {
	for _, seg := range segments {
		if seg.GroupID == g.ID && strings.EqualFold(seg.Selector, plural.Other.String()) {
			return seg
		}
	}
	return nil
}

// List expands a caller-supplied category map without parsing a message.
// Keys that are not CLDR categories come first, unchanged. Then each
// category from zero to other that profile supports (every category when
// profile is nil) is emitted with its own text, or with the "other" text
// as an ExpandedPlural item when the map lacks it.
func List(m *OrderedMap, profile *plural.Profile, reg *plural.Registry) ([]*segment.Item, error) {
	byCategory := make(map[plural.Category]string, plural.NumCategories)
	var items []*segment.Item

	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		c, ok := plural.ParseCategory(key)
		if !ok {
			items = append(items, &segment.Item{
				Text:       value,
				ResourceID: key,
				Category:   key,
				Kind:       segment.KindDefault,
			})
			continue
		}
		if _, seen := byCategory[c]; !seen {
			byCategory[c] = value
		}
	}

	otherText, ok := byCategory[plural.Other]
	if !ok {
		return nil, &segment.UsageError{Op: "expand", Msg: "plural list has no 'other' entry"}
	}

	for _, c := range plural.Categories() {
		if profile != nil && !profile.Supports(c) {
			continue
		}

		item := &segment.Item{
			ResourceID: c.String(),
			Category:   c.String(),
			Exclusions: reg.Exclusions(c),
			Kind:       segment.KindDefault,
		}
		if text, present := byCategory[c]; present {
			item.Text = text
		} else {
			item.Text = otherText
			item.Kind = segment.KindExpandedPlural
		}
		items = append(items, item)
	}

	return items, nil
}
