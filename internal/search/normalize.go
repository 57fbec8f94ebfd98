package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalize lowercases and removes diacritics for matching.
func normalize(s string) string {
	return strings.ToLower(RemoveDiacritics(s))
}

// RemoveDiacritics removes accents from characters.
// Useful for searching "cafe" to match "café".
func RemoveDiacritics(s string) string {
	var result strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			// Skip combining marks (diacritics)
			continue
		}
		result.WriteRune(r)
	}
	return norm.NFC.String(result.String())
}
