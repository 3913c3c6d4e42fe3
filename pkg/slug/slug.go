// Package slug derives URL-safe slugs from post titles. The editor UI and
// the server must produce identical slugs for the same title, so the rule
// lives in one place.
package slug

import (
	"strings"
	"unicode"
)

// Make converts a title to its slug: lowercase, non-alphanumeric runes
// other than spaces are dropped, runs of whitespace become single hyphens.
func Make(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
