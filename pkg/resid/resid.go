// Package resid makes resource ids unique within a message.
package resid

import "strconv"

// Disambiguate appends "#0", "#1", ... to every id shared by more than one
// item, numbering in encounter order. Unique ids are left unchanged.
func Disambiguate[T any](items []T, id func(T) string, setID func(T, string)) {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[id(item)]++
	}

	next := make(map[string]int, len(counts))
	for _, item := range items {
		key := id(item)
		if counts[key] < 2 {
			continue
		}
		setID(item, key+"#"+strconv.Itoa(next[key]))
		next[key]++
	}
}
