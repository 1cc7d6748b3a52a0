package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON isolates the JSON document inside a raw model reply. Even with
// a JSON response MIME type some replies arrive wrapped in markdown fences or
// prefixed with a line of prose, so the first balanced object or array is cut
// out and checked for validity.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty model response")
	}

	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	switch {
	case objStart != -1 && (arrStart == -1 || objStart < arrStart):
		if end := matchDelim(s, objStart, '{', '}'); end != -1 {
			s = s[objStart : end+1]
		}
	case arrStart != -1:
		if end := matchDelim(s, arrStart, '[', ']'); end != -1 {
			s = s[arrStart : end+1]
		}
	default:
		return "", fmt.Errorf("no JSON value in model response")
	}

	s = strings.TrimSpace(s)
	if !json.Valid([]byte(s)) {
		return "", fmt.Errorf("model response is not valid JSON")
	}
	return s, nil
}

// matchDelim returns the index of the closing delimiter balancing the opener
// at start, skipping string literals and escapes. -1 when unbalanced.
func matchDelim(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
