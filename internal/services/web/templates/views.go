// Package templates renders the gallery's HTML views.
package templates

import "strings"

// AppName is the site title shown in the layout and page titles.
const AppName = "Stickerbook"

// StickerCard holds one sticker prepared for the gallery grid.
type StickerCard struct {
	// Filename is the unique identifier for the sticker.
	Filename string
	// Caption is the sticker caption text, possibly empty.
	Caption string
	// DetailPath is the link target for the sticker detail page.
	DetailPath string
	// AssetPath is the image URL for the sticker thumbnail.
	AssetPath string
}

// GalleryView holds the data for the catalog page and its grid fragment.
type GalleryView struct {
	// Query is the current search text, empty on the root view.
	Query string
	// SearchPath is the canonical path for the current query.
	SearchPath string
	// Stickers are the visible stickers in catalog order.
	Stickers []StickerCard
}

// StickerView holds the data for the detail page.
type StickerView struct {
	// Filename is the unique identifier for the sticker.
	Filename string
	// Caption is the sticker caption text, possibly empty.
	Caption string
	// AssetPath is the image URL for the full-size sticker.
	AssetPath string
}

// ComposePageTitle builds a browser title from an optional page heading.
func ComposePageTitle(heading string) string {
	heading = strings.TrimSpace(heading)
	if heading == "" {
		return AppName
	}
	return heading + " · " + AppName
}

// GalleryTitle returns the page title for a gallery view.
func GalleryTitle(query string) string {
	if query == "" {
		return ComposePageTitle("")
	}
	return ComposePageTitle("Search: " + query)
}
