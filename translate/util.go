package translate

import (
	"strings"
	"unicode"
)

// normalizeIdent strips surrounding double quotes and maps hyphens to
// underscores so the result is a valid target identifier. Idempotent.
func normalizeIdent(s string) string {
	s = strings.Trim(s, "\"")
	return strings.ReplaceAll(s, "-", "_")
}

// lowerFirst lowercases the first character of s.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// capitalize uppercases the first character of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// dedup removes duplicates from items, keeping the first occurrence of each
// value in its original position.
func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
