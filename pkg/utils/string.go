package utils

import (
	"strings"
	"unicode"
)

// Slugify converts a display name into a URL-safe slug: lowercased, with
// runs of non-alphanumeric characters collapsed into single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}
