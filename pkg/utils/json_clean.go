package utils

import "strings"

// cleanJSONResponse strips markdown fences and any prose around the first
// JSON object of a model reply.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		return response[start : end+1]
	}
	return response[start:]
}

// findMatchingBrace returns the index of the brace closing s[start], or -1.
// Braces inside string literals are ignored.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		char := s[i]
		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
