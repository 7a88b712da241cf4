package gemini

import (
	"fmt"
	"strings"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/textnorm"
)

// The model answers with whatever JSON types it feels like. The coercers
// below fold numbers-as-strings, null and stray whitespace back into the
// profile types, dropping anything that cannot be salvaged.

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
	return ""
}

func coerceInt(v any, valid func(int) bool) profile.OptionalInt {
	var n profile.OptionalInt
	switch t := v.(type) {
	case float64:
		n = profile.Int(int(t))
	case string:
		parsed, ok := profile.ParseInt(t)
		if !ok {
			return profile.OptionalInt{}
		}
		n = parsed
	default:
		return profile.OptionalInt{}
	}
	if !valid(n.Value) {
		return profile.OptionalInt{}
	}
	return n
}

// coerceStringList accepts a JSON array of scalars or a delimited string.
func coerceStringList(v any) []string {
	switch t := v.(type) {
	case []any:
		var items []string
		seen := make(map[string]struct{}, len(t))
		for _, el := range t {
			s := coerceString(el)
			if s == "" {
				continue
			}
			key := strings.ToLower(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			items = append(items, s)
		}
		return items
	case string:
		return textnorm.SplitList(t)
	}
	return nil
}

// cleanList trims a decoded string list and drops blanks and duplicates.
func cleanList(items []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// coerceGender only accepts the exact closed-vocabulary values in full
// profile mode; free-form answers go through profile.ParseGender in the
// single-field path instead.
func coerceGender(v any) profile.Gender {
	s := coerceString(v)
	if profile.KnownGender(s) {
		return profile.Gender(s)
	}
	return profile.GenderUnset
}

func coerceMilitaryStatus(v any) profile.MilitaryStatus {
	s := coerceString(v)
	if profile.KnownMilitaryStatus(s) {
		return profile.MilitaryStatus(s)
	}
	return profile.MilitaryUnset
}
