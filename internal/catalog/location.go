package catalog

// LocationKind discriminates the navigable states of the gallery.
type LocationKind int

const (
	// KindRoot is the unfiltered catalog view.
	KindRoot LocationKind = iota
	// KindFiltered is the catalog view narrowed by a non-empty query.
	KindFiltered
	// KindDetail is a single sticker view.
	KindDetail
)

// Location is the abstract navigable state the URL tracks. The search query
// is a projection of a Location, never an independent store, so restoring a
// Location reproduces the exact same derived view.
type Location struct {
	Kind     LocationKind
	Query    string
	Filename string
}

// Root returns the unfiltered catalog location.
func Root() Location {
	return Location{Kind: KindRoot}
}

// Filtered returns the location for a query. An empty query collapses to
// Root so the navigable state never encodes an empty search.
func Filtered(query string) Location {
	if query == "" {
		return Root()
	}
	return Location{Kind: KindFiltered, Query: query}
}

// Detail returns the location for one sticker.
func Detail(filename string) Location {
	return Location{Kind: KindDetail, Filename: filename}
}
