package catalog

// Browser owns the current search query and keeps it synchronized with the
// navigable Location. The binding has two independent edges: SetQuery maps
// typed text to a Location the caller must navigate to with a history
// replace, and OnLocationChanged mirrors an externally changed Location back
// into the query without triggering navigation.
type Browser struct {
	catalog *Catalog
	query   string
}

// NewBrowser returns a browser over catalog with an empty query.
func NewBrowser(catalog *Catalog) *Browser {
	return &Browser{catalog: catalog}
}

// Query returns the current search text.
func (b *Browser) Query() string {
	if b == nil {
		return ""
	}
	return b.query
}

// SetQuery records text as the current query and returns the Location the
// navigation layer must replace to: Root for empty text, Filtered otherwise.
// Replace, not push, so incremental typing does not flood history.
func (b *Browser) SetQuery(text string) Location {
	b.query = text
	return Filtered(text)
}

// OnLocationChanged mirrors a Location change that did not originate from
// SetQuery (back/forward navigation, a shared link) into the query. It only
// updates local state; navigating here would re-enter the binding's forward
// edge and loop. Re-entry with the current value is a no-op. Detail
// locations carry no query and leave it untouched.
func (b *Browser) OnLocationChanged(loc Location) {
	switch loc.Kind {
	case KindRoot:
		b.query = ""
	case KindFiltered:
		b.query = loc.Query
	}
}

// Visible derives the stickers to display: the whole catalog in original
// order for an empty query, otherwise the caption-matching subset. Pure
// with respect to the catalog and the current query.
func (b *Browser) Visible() []Sticker {
	if b == nil {
		return nil
	}
	return Filter(b.catalog.All(), b.query)
}
