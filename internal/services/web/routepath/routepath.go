// Package routepath centralizes the gallery's addressable routes and the
// mapping between URLs and catalog locations.
package routepath

import (
	"net/url"
	"strings"

	"github.com/louisbranch/stickerbook/internal/catalog"
)

// Route constants for the gallery surface.
const (
	Root           = "/"
	Health         = "/healthz"
	SearchPrefix   = "/search/"
	StickersPrefix = "/stickers/"
	AssetsPrefix   = "/assets/"
	StaticPrefix   = "/static/"
)

// Search returns the filtered-catalog path for query. The query travels as a
// single percent-encoded path segment; an empty query collapses to Root so
// the URL never encodes an empty search.
func Search(query string) string {
	if query == "" {
		return Root
	}
	return SearchPrefix + url.PathEscape(query)
}

// Sticker returns the detail path for a filename.
func Sticker(filename string) string {
	return StickersPrefix + url.PathEscape(filename)
}

// Asset returns the image path for a filename: the fixed asset prefix plus
// the filename, nothing more.
func Asset(filename string) string {
	return AssetsPrefix + url.PathEscape(filename)
}

// ForLocation maps a catalog location to its canonical path.
func ForLocation(loc catalog.Location) string {
	switch loc.Kind {
	case catalog.KindFiltered:
		return Search(loc.Query)
	case catalog.KindDetail:
		return Sticker(loc.Filename)
	default:
		return Root
	}
}

// ParseLocation maps a request path back to a catalog location. The second
// return is false for paths outside the navigable state space (static
// assets, health checks, malformed escapes).
func ParseLocation(path string) (catalog.Location, bool) {
	switch {
	case path == Root:
		return catalog.Root(), true
	case strings.HasPrefix(path, SearchPrefix):
		query, ok := unescapeSegment(strings.TrimPrefix(path, SearchPrefix))
		if !ok {
			return catalog.Location{}, false
		}
		return catalog.Filtered(query), true
	case strings.HasPrefix(path, StickersPrefix):
		filename, ok := unescapeSegment(strings.TrimPrefix(path, StickersPrefix))
		if !ok {
			return catalog.Location{}, false
		}
		return catalog.Detail(filename), true
	default:
		return catalog.Location{}, false
	}
}

func unescapeSegment(segment string) (string, bool) {
	if segment == "" || strings.Contains(segment, "/") {
		return "", false
	}
	value, err := url.PathUnescape(segment)
	if err != nil {
		return "", false
	}
	return value, true
}
