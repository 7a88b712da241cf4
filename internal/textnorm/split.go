package textnorm

import "strings"

// SplitList breaks a free-text enumeration on Persian and Latin commas,
// semicolons and the standalone conjunction «و»/"and". Items are trimmed
// and deduplicated case-insensitively, first occurrence first.
func SplitList(fragment string) []string {
	parts := strings.FieldsFunc(fragment, func(r rune) bool {
		return r == '،' || r == ',' || r == ';' || r == '؛'
	})

	var items []string
	seen := make(map[string]struct{})
	for _, part := range parts {
		for _, piece := range splitOnConjunction(part) {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			key := strings.ToLower(piece)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			items = append(items, piece)
		}
	}
	return items
}

func splitOnConjunction(s string) []string {
	s = " " + s + " "
	s = strings.ReplaceAll(s, " و ", "\x00")
	s = strings.ReplaceAll(s, " and ", "\x00")
	return strings.Split(s, "\x00")
}
