package search

import (
	"strings"
	"unicode/utf8"
)

// normalizeQuery trims the query and folds it to lower case.
// A blank query normalizes to "".
func normalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// containsAny reports whether any field, or any element of list, contains q.
// q must already be normalized.
func containsAny(q string, list []string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, item := range list {
		if strings.Contains(strings.ToLower(item), q) {
			return true
		}
	}
	return false
}

// truncateRunes keeps the first n characters of s without regard to word boundaries.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
