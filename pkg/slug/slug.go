// Package slug derives URL-safe slugs from display names.
package slug

import (
	"strings"
	"unicode"
)

// Make lowercases the input, replaces runs of non-alphanumeric characters
// with single hyphens, and trims leading/trailing hyphens.
// "Summer T-Shirts 2024" becomes "summer-t-shirts-2024".
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
