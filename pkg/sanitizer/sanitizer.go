package sanitizer

import (
	"regexp"
	"strings"
)

var dotRegex = regexp.MustCompile(`\.{2,}`)

// NormalizeEmail lowercases and trims an email address and collapses
// consecutive dots in the local part so equivalent spellings map to the same
// stored value.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := strings.Trim(dotRegex.ReplaceAllString(parts[0], "."), ".")
	return local + "@" + parts[1]
}

// Trim removes surrounding whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeName trims whitespace and collapses internal runs of spaces.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
