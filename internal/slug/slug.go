// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a slug from a name: lowercase, runs of non-alphanumeric
// characters collapse to a single hyphen, leading and trailing hyphens are
// trimmed. "B&W 802 D4" becomes "b-w-802-d4".
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
