// Package slug derives URL-safe identifiers from human text.
package slug

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make lowercases the value and reduces it to a hyphenated ASCII token.
// Accented characters are decomposed (NFKD) so their base letters
// survive; anything else that is not a letter, digit or underscore is
// dropped, and runs of whitespace and hyphens collapse to a single
// hyphen.
func Make(value string) string {
	decomposed := strings.ToLower(norm.NFKD.String(value))

	var b strings.Builder
	b.Grow(len(decomposed))
	pendingHyphen := false
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			pendingHyphen = true
		}
	}

	return strings.Trim(b.String(), "-_")
}

// DatePath prefixes a slug with a zero-padded YYYY/MM/DD segment.
func DatePath(d time.Time, s string) string {
	return d.Format("2006/01/02") + "/" + s
}
