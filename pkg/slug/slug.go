package slug

import (
	"crypto/rand"
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	invalidChars   = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns     = regexp.MustCompile(`-{2,}`)
	canonical      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Make converts a human-readable name into a URL-safe slug.
// It lowercases the input, replaces runs of whitespace with a single
// hyphen, strips every remaining character outside [a-z0-9-], collapses
// consecutive hyphens, and trims leading and trailing hyphens.
//
// Make is idempotent: Make(Make(s)) == Make(s). Inputs with no
// alphanumeric characters produce an empty string; callers that need a
// non-empty identifier should fall back to Random.
func Make(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValid reports whether s is already in canonical slug form:
// non-empty, lowercase alphanumeric groups separated by single hyphens.
func IsValid(s string) bool {
	return canonical.MatchString(s)
}

// Random returns n random lowercase alphanumeric characters, suitable as
// a slug fallback when a name normalizes to nothing.
func Random(n int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// Deterministic fallback on rand.Read failure
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}
	return string(b)
}
