package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NormalizeSlug lower-cases and trims a slug. It does not repair invalid characters.
func NormalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidSlug reports whether s is URL-safe: lowercase alphanumerics separated by single hyphens.
func ValidSlug(s string) bool {
	return len(s) <= 100 && slugPattern.MatchString(s)
}
