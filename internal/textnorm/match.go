package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsToken reports whether phrase occurs in text on token boundaries:
// the runes immediately before and after the occurrence must not be letters
// or digits. Matching is case-sensitive; callers lowercase both sides when
// they need folding. RE2 has no lookaround, so the boundary check is done by
// hand.
func ContainsToken(text, phrase string) bool {
	return IndexToken(text, phrase) >= 0
}

// IndexToken returns the byte index of the first token-boundary occurrence
// of phrase in text, or -1.
func IndexToken(text, phrase string) int {
	if phrase == "" {
		return -1
	}
	for from := 0; ; {
		idx := strings.Index(text[from:], phrase)
		if idx < 0 {
			return -1
		}
		start := from + idx
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return start
		}
		from = start + 1
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
