// Package pseudo produces pseudo-localized item text for the qps-ploc
// family of test locales. Letters are swapped for accented look-alikes and
// the text is padded and bracketed, while placeholders and number signs are
// left byte for byte as they were.
package pseudo

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/goicu/pkg/fix"
	"github.com/yaklabco/goicu/pkg/segment"
)

// Options controls the transformation.
type Options struct {
	// Expansion is the padding added, as a fraction of the translatable
	// rune count. Zero disables padding.
	Expansion float64 `yaml:"expansion"`

	// Brackets wraps the text in "[" and "]" so truncation is visible.
	Brackets bool `yaml:"brackets"`
}

// DefaultOptions returns 30% expansion with brackets.
func DefaultOptions() Options {
	return Options{Expansion: 0.3, Brackets: true}
}

const padRune = '~'

//nolint:gochecknoglobals // Read-only lookup table.
var accents = map[rune]rune{
	'a': 'á', 'b': 'ƀ', 'c': 'ç', 'd': 'ð', 'e': 'é', 'f': 'ƒ', 'g': 'ĝ',
	'h': 'ĥ', 'i': 'í', 'j': 'ĵ', 'k': 'ķ', 'l': 'ļ', 'm': 'ɱ', 'n': 'ñ',
	'o': 'ö', 'p': 'þ', 'q': 'ǫ', 'r': 'ŕ', 's': 'š', 't': 'ţ', 'u': 'ü',
	'v': 'ṽ', 'w': 'ŵ', 'x': 'ẋ', 'y': 'ý', 'z': 'ž',
	'A': 'Å', 'B': 'Ɓ', 'C': 'Ç', 'D': 'Ð', 'E': 'É', 'F': 'Ƒ', 'G': 'Ĝ',
	'H': 'Ĥ', 'I': 'Î', 'J': 'Ĵ', 'K': 'Ķ', 'L': 'Ļ', 'M': 'Ṁ', 'N': 'Ñ',
	'O': 'Ö', 'P': 'Þ', 'Q': 'Ǫ', 'R': 'Ŕ', 'S': 'Š', 'T': 'Ţ', 'U': 'Û',
	'V': 'Ṽ', 'W': 'Ŵ', 'X': 'Ẋ', 'Y': 'Ý', 'Z': 'Ž',
}

// Localize pseudo-localizes text. locked lists substrings of text, in
// order, that must survive unchanged.
func Localize(text string, locked []string, opts Options) (string, error) {
	b := fix.NewEditBuilder()
	translatable := 0

	cursor := 0
	for _, piece := range locked {
		idx := strings.Index(text[cursor:], piece)
		if idx < 0 {
			return "", fmt.Errorf("locked substring %q not found in %q", piece, text)
		}
		translatable += accentRange(b, text, cursor, cursor+idx)
		cursor += idx + len(piece)
	}
	translatable += accentRange(b, text, cursor, len(text))

	out, err := b.Apply(text)
	if err != nil {
		return "", fmt.Errorf("pseudo-localize %q: %w", text, err)
	}

	if pad := int(math.Ceil(float64(translatable) * opts.Expansion)); pad > 0 {
		out += strings.Repeat(string(padRune), pad)
	}
	if opts.Brackets {
		out = "[" + out + "]"
	}
	return out, nil
}

// accentRange queues the replacement of text[start:end] and returns its
// rune count.
func accentRange(b *fix.EditBuilder, text string, start, end int) int {
	if start >= end {
		return 0
	}
	chunk := text[start:end]
	accented := strings.Map(func(r rune) rune {
		if alt, ok := accents[r]; ok {
			return alt
		}
		return r
	}, chunk)
	if accented != chunk {
		b.Replace(start, end, accented)
	}
	return utf8.RuneCountInString(chunk)
}

// Items pseudo-localizes every item in place.
func Items(items []*segment.Item, opts Options) error {
	for _, item := range items {
		text, err := Localize(item.Text, item.Locked, opts)
		if err != nil {
			return fmt.Errorf("item %q: %w", item.ResourceID, err)
		}
		item.Text = text
	}
	return nil
}
