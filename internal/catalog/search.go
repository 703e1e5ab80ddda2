package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fold prepares text for caseless substring comparison: NFC normalization
// first so composed and decomposed forms compare equal, then lowercasing.
func fold(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// Matches reports whether caption contains query as a case-insensitive
// substring. The query is used literally; surrounding whitespace counts.
func Matches(caption, query string) bool {
	return strings.Contains(fold(caption), fold(query))
}

// Filter returns the stickers whose caption matches query, preserving
// catalog order. An empty query matches everything.
func Filter(stickers []Sticker, query string) []Sticker {
	if query == "" {
		return stickers
	}
	matched := make([]Sticker, 0, len(stickers))
	needle := fold(query)
	for _, sticker := range stickers {
		if strings.Contains(fold(sticker.Caption), needle) {
			matched = append(matched, sticker)
		}
	}
	return matched
}
