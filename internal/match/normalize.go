package match

import "strings"

// FlatKey returns the name lowercased with both spaces and hyphens
// removed. "Visual Studio Code" and "visual-studio-code" flatten to the
// same key, which is what makes app-name vs catalog-name comparisons
// symmetric.
func FlatKey(name string) string {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	return key
}

// HyphenKey returns the name lowercased with spaces replaced by
// hyphens, matching the Homebrew token convention. Keys are for
// comparison only, never for display.
func HyphenKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// stripHyphens is the hyphen-insensitive form used by the pairwise
// equality tests in Classify.
func stripHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
