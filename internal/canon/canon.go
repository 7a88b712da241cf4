// Package canon maps raw skill and interest phrases onto the canonical
// labels of the lexicon tables.
package canon

import (
	"strings"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/lexicon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/textnorm"
)

type Canonicalizer struct {
	lex *lexicon.Store
}

func New(lex *lexicon.Store) *Canonicalizer {
	return &Canonicalizer{lex: lex}
}

// Canonicalize resolves each raw phrase against the skill synonym table.
// The first synonym set that matches on token boundaries wins; phrases
// without a match are kept verbatim (trimmed). The result is deduplicated
// case-insensitively with first-seen order preserved. The operation is
// idempotent: canonical labels resolve to themselves.
func (c *Canonicalizer) Canonicalize(items []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		t := strings.ToLower(textnorm.Normalize(item))
		if t == "" {
			continue
		}

		final := strings.TrimSpace(item)
		for _, entry := range c.lex.Skills() {
			if matchesEntry(t, entry) {
				final = entry.Label
				break
			}
		}

		key := strings.ToLower(final)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, final)
	}
	return out
}

func matchesEntry(t string, entry lexicon.SkillEntry) bool {
	for _, syn := range entry.Synonyms {
		if textnorm.ContainsToken(t, syn) {
			return true
		}
	}
	return false
}

// Categorize re-buckets interests into the broader category labels by
// keyword containment. When at least one category matches, the categorized
// union replaces the input (in the fixed table order); otherwise the input
// is returned unchanged.
func (c *Canonicalizer) Categorize(interests []string) []string {
	matched := []string{}
	seen := make(map[string]struct{})

	for _, category := range c.lex.InterestCategories() {
		if _, ok := seen[category.Label]; ok {
			continue
		}
		for _, interest := range interests {
			if categoryMatches(category, interest) {
				matched = append(matched, category.Label)
				seen[category.Label] = struct{}{}
				break
			}
		}
	}

	if len(matched) == 0 {
		return interests
	}
	return matched
}

func categoryMatches(category lexicon.InterestCategory, interest string) bool {
	lower := strings.ToLower(textnorm.Normalize(interest))
	for _, kw := range category.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
