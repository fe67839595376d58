// Package jsonx extracts JSON objects from model output.
//
// Models asked for "a single JSON object" still tend to wrap it in
// prose or markdown fences. ExtractObject tolerates both and returns
// the first balanced top-level object span.
package jsonx

import (
	"errors"
	"strings"
)

// ErrNoObject is returned when the input contains no complete JSON object.
var ErrNoObject = errors.New("no JSON object found in response")

// ExtractObject returns the first balanced {...} span in s.
// Markdown code fences are stripped first. Braces inside JSON string
// literals (including escaped quotes) do not affect the balance.
func ExtractObject(s string) (string, error) {
	s = stripFences(s)

	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", ErrNoObject
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
				return s[start : i+1], nil
			}
		}
	}

	return "", ErrNoObject
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
