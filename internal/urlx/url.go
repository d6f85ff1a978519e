// Package urlx contains helpers for cleaning user-supplied endpoint URLs.
package urlx

import "strings"

// NormalizeBaseURL sanitizes a user-entered API base URL: surrounding
// whitespace is trimmed, a single leading and a single trailing quote
// character (' or ") are stripped, and trailing slashes are removed.
//
// Example:
//
//	NormalizeBaseURL(" 'http://host/' ") == "http://host"
func NormalizeBaseURL(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return strings.TrimRight(s, "/")
}
