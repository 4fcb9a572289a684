// Package names derives human-readable room identifiers from grid indices.
package names

import (
	"strings"

	"github.com/divan/num2words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Number returns the English cardinal words for n, lower case ("seven").
func Number(n int) string {
	return num2words.Convert(n)
}

// Room builds a title-cased room identifier from a name prefix and a
// 1-based linear grid index: Room("wilderness", 7) -> "Wilderness Seven".
func Room(prefix string, index int) string {
	return Title(strings.TrimSpace(prefix + " " + num2words.Convert(index)))
}

// Title returns s in English title case.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
