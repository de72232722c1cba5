package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/goicu/pkg/config"
)

// layer is one configuration source. keys lists the fields the source set
// explicitly, as dotted yaml paths ("pseudo.expansion"); a nil keys means
// any non-zero field counts as set.
type layer struct {
	cfg  *config.Config
	keys map[string]bool
}

func (l layer) has(key string, nonZero bool) bool {
	if l.keys == nil {
		return nonZero
	}
	return l.keys[key]
}

// merge applies override onto base and returns a new config.
// Aliases merge key by key; Ignore is replaced as a whole.
func merge(base *config.Config, override layer) *config.Config {
	if override.cfg == nil {
		return base
	}
	result := base.Clone()
	if result == nil {
		result = &config.Config{}
	}
	o := override.cfg

	if override.has("language", o.Language != "") {
		result.Language = o.Language
	}
	if override.has("merge_duplicates", o.MergeDuplicates) {
		result.MergeDuplicates = o.MergeDuplicates
	}
	if override.has("format", o.Format != "") {
		result.Format = o.Format
	}
	if override.has("color", o.Color != "") {
		result.Color = o.Color
	}
	if override.has("workers", o.Workers != 0) {
		result.Workers = o.Workers
	}
	if override.has("ignore", o.Ignore != nil) {
		result.Ignore = slices.Clone(o.Ignore)
	}
	if override.has("pseudo.expansion", o.Pseudo.Expansion != 0) {
		result.Pseudo.Expansion = o.Pseudo.Expansion
	}
	if override.has("pseudo.brackets", o.Pseudo.Brackets) {
		result.Pseudo.Brackets = o.Pseudo.Brackets
	}

	if len(o.Aliases) > 0 {
		if result.Aliases == nil {
			result.Aliases = make(map[string]string, len(o.Aliases))
		}
		maps.Copy(result.Aliases, o.Aliases)
	}

	return result
}
