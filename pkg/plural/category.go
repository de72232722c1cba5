package plural

import "strings"

// Category is one of the six CLDR plural categories.
type Category uint8

// CLDR plural categories in canonical order.
const (
	Zero Category = iota
	One
	Two
	Few
	Many
	Other
)

// NumCategories is the number of standard categories.
const NumCategories = 6

//nolint:gochecknoglobals // Read-only lookup table.
var categoryNames = [NumCategories]string{"zero", "one", "two", "few", "many", "other"}

// String returns the CLDR keyword of the category.
func (c Category) String() string {
	if int(c) < NumCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories returns all six categories in canonical order.
func Categories() []Category {
	return []Category{Zero, One, Two, Few, Many, Other}
}

// ParseCategory maps a selector label to a category, ignoring case.
// Exact-match selectors such as "=1" and arbitrary labels return false.
func ParseCategory(label string) (Category, bool) {
	for i, name := range categoryNames {
		if strings.EqualFold(label, name) {
			return Category(i), true
		}
	}
	return 0, false
}

// IsStandard reports whether label names a CLDR category.
func IsStandard(label string) bool {
	_, ok := ParseCategory(label)
	return ok
}
