package lexishift

import (
	"regexp"
	"strings"
	"unicode"
)

// nonTranslatableStrings matches string contents that are machine-readable
// rather than human prose. One pattern per shape, tried in order against the
// trimmed value.
var nonTranslatableStrings = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z][a-z0-9+.-]*://`),      // URLs
	regexp.MustCompile(`^(\./|\.\./|/|[A-Za-z]:\\)`), // filesystem paths
	regexp.MustCompile(`^[.#][A-Za-z][\w-]*$`),       // CSS selectors
	regexp.MustCompile(`^[\w-]+(\.[\w-]+)+$`),        // dotted keys, hostnames, filenames
	regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`),        // hex colors
	regexp.MustCompile(`^[\w.+-]+/[\w.+-]+$`),        // MIME types
	regexp.MustCompile(`%[#+\- 0]*[0-9*]*(\.[0-9*]+)?[a-zA-Z]`), // format verbs
	regexp.MustCompile(`\$\{|\{\{|\{\d+\}`),          // interpolation placeholders
}

// isTranslatableString reports whether a string literal's contents look like
// human-readable text. Values that fail the check are left verbatim without
// being counted as unmapped.
func isTranslatableString(value string) bool {
	v := strings.TrimSpace(value)
	if len([]rune(v)) < 2 {
		return false
	}
	if !containsLetter(v) {
		return false
	}
	if isScreamingToken(v) {
		return false
	}
	for _, re := range nonTranslatableStrings {
		if re.MatchString(v) {
			return false
		}
	}
	return true
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isScreamingToken matches SCREAMING_SNAKE constant names.
func isScreamingToken(s string) bool {
	hasUpper := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r == '_' || (r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return hasUpper
}
