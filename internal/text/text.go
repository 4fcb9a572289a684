// Package text provides natural-language formatting helpers shared by the
// Inform renderer.
package text

import "strings"

// Join formats items as a natural-language list with the given conjunction:
// nothing for an empty list, the bare item for one, "X and Y" for two, and
// "X, Y, and Z" with a serial comma for three or more.
func Join(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		if i == len(items)-1 {
			b.WriteString(conj)
			b.WriteString(" ")
		}
		b.WriteString(item)
	}
	return b.String()
}

// IsAre returns the verb agreeing with a list of n subjects.
func IsAre(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}
