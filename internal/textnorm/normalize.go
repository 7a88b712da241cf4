// Package textnorm canonicalizes raw utterances before any extraction runs.
package textnorm

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// digit translation tables, Persian and Arabic-Indic forms.
var digits = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// Normalize converts Persian and Arabic-Indic digits to ASCII, replaces
// zero-width joiners with plain spaces, collapses whitespace runs and trims.
// It is pure, total and idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if ascii, ok := digits[r]; ok {
			b.WriteRune(ascii)
			continue
		}
		if r == '\u200c' { // zero-width non-joiner
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(spaceRuns.ReplaceAllString(b.String(), " "))
}
