package plural

// Profile records which plural categories a language uses.
type Profile struct {
	Tag  string
	Name string

	flags [NumCategories]bool
}

// NewProfile builds a profile supporting the given categories.
// "other" is always supported.
func NewProfile(tag, name string, categories ...Category) Profile {
	prof := Profile{Tag: tag, Name: name}
	for _, c := range categories {
		if int(c) < NumCategories {
			prof.flags[c] = true
		}
	}
	prof.flags[Other] = true
	return prof
}

// Supports reports whether the language uses category c.
func (p Profile) Supports(c Category) bool {
	if int(c) >= NumCategories {
		return false
	}
	return p.flags[c]
}

// Categories returns the supported categories in canonical order.
func (p Profile) Categories() []Category {
	var out []Category
	for _, c := range Categories() {
		if p.flags[c] {
			out = append(out, c)
		}
	}
	return out
}

// IsZero reports whether the profile is unset.
func (p Profile) IsZero() bool {
	return p.Tag == "" && !p.flags[Other]
}
