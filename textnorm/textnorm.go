package textnorm

import "strings"

// Normalize lower-cases text, replaces every character outside
// [a-z0-9 ] with a space, collapses whitespace runs, and trims.
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens splits the normalized form of text into its non-empty words.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// ContainsAny reports whether the normalized text contains the
// normalized form of at least one keyword as a contiguous substring.
// A multi-word keyword matches only if it appears contiguously.
func ContainsAny(text string, keywords []string) bool {
	normalized := Normalize(text)
	for _, keyword := range keywords {
		if strings.Contains(normalized, Normalize(keyword)) {
			return true
		}
	}
	return false
}
