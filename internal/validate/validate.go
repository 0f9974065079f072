package validate

import (
	"regexp"
	"strings"
)

var (
	// Permissive shape check: something@something.tld, no whitespace.
	reEmail  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reDigits = regexp.MustCompile(`[0-9]`)
)

// Name trims and requires a non-empty value. No length cap: inquiry
// fields are stored as-is.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Phone accepts any formatting as long as at least 10 digits remain
// after stripping separators, e.g. "(555) 123-4567".
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	digits := reDigits.FindAllString(s, -1)
	return s, len(digits) >= 10
}

// Optional trims a field that may legitimately be empty.
func Optional(s string) string {
	return strings.TrimSpace(s)
}
