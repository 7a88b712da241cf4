package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
)

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, that models like to wrap JSON output in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// firstJSONObject returns the first balanced top-level {...} in s. The scan
// tracks string literals so braces inside values do not break the balance.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// decodeObject pulls the first JSON object out of a model completion and
// decodes it into a generic map. Anything else is ai.ErrBadResponse.
func decodeObject(completion string) (map[string]any, error) {
	raw, ok := firstJSONObject(stripCodeFence(completion))
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in completion", ai.ErrBadResponse)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("%w: decode object: %v", ai.ErrBadResponse, err)
	}
	return obj, nil
}
