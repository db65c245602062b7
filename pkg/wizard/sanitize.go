package wizard

import (
	"crypto/rand"
	"strings"
	"unicode/utf8"
)

// MinProjectNameLength is the shortest project name accepted on StepName.
const MinProjectNameLength = 3

// SecretLength is the length of secrets returned by GenerateSecret.
const SecretLength = 26

// SanitizeProjectName replaces every character outside [a-zA-Z0-9-] with a
// hyphen. Replacement is one-for-one per code point, so "My Blog!!" becomes
// "My-Blog--". The result is always ASCII.
func SanitizeProjectName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, name)
}

// ProjectNameLength returns the length of name in characters.
func ProjectNameLength(name string) int {
	return utf8.RuneCountInString(name)
}

// GenerateSecret returns a random lowercase alphanumeric string suitable as
// a PAYLOAD_SECRET suggestion.
func GenerateSecret() string {
	return strings.ToLower(rand.Text())
}
