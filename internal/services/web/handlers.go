package web

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/stickerbook/internal/catalog"
	apperrors "github.com/louisbranch/stickerbook/internal/services/web/platform/errors"
	"github.com/louisbranch/stickerbook/internal/services/web/platform/htmx"
	"github.com/louisbranch/stickerbook/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/stickerbook/internal/services/web/templates"
)

// replaceURLHeader asks HTMX to replace the current history entry. Typing
// must never push one entry per keystroke; only explicit navigations push.
const replaceURLHeader = "HX-Replace-Url"

type handlers struct {
	catalog *catalog.Catalog
}

func newHandlers(cat *catalog.Catalog) handlers {
	return handlers{catalog: cat}
}

// handleRoot serves the unfiltered catalog. The URL alone determines the
// derived view, so arriving by link, bookmark, or history restore renders
// identically.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	browser := catalog.NewBrowser(h.catalog)
	browser.OnLocationChanged(catalog.Root())
	h.writeGallery(w, r, browser)
}

// handleSearchSegment serves the canonical filtered route /search/{query}.
// The mux decodes the percent-encoded segment before it reaches us.
func (h handlers) handleSearchSegment(w http.ResponseWriter, r *http.Request) {
	query := r.PathValue("query")
	if query == "" {
		// The navigable state space never encodes an empty search.
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	browser := catalog.NewBrowser(h.catalog)
	browser.OnLocationChanged(catalog.Filtered(query))
	h.writeGallery(w, r, browser)
}

// handleSearchForm is the typing endpoint the search input targets. It runs
// the forward edge of the binding: SetQuery yields the Location to replace
// to, sent back as an HX-Replace-Url header on fragment responses. Plain
// form submissions redirect to the canonical path instead.
func (h handlers) handleSearchForm(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("query")

	browser := catalog.NewBrowser(h.catalog)
	loc := browser.SetQuery(text)
	canonical := routepath.ForLocation(loc)

	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, canonical, http.StatusFound)
		return
	}

	w.Header().Set(replaceURLHeader, canonical)
	view := h.galleryView(browser)
	if err := htmx.RenderPage(w, r, webtemplates.GalleryGrid(view), nil, webtemplates.GalleryTitle(view.Query)); err != nil {
		log.Printf("render search fragment: %v", err)
	}
}

// handleSticker serves the detail route. An unknown filename is a normal
// outcome and renders an explicit not-found page.
func (h handlers) handleSticker(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	sticker, ok := h.catalog.Resolve(filename)
	if !ok {
		err := apperrors.E(apperrors.KindNotFound, "sticker not in catalog")
		w.WriteHeader(apperrors.HTTPStatus(err))
		h.writePage(w, r, webtemplates.NotFoundPage(filename))
		return
	}

	h.writePage(w, r, webtemplates.StickerPage(webtemplates.StickerView{
		Filename:  sticker.Filename,
		Caption:   sticker.Caption,
		AssetPath: routepath.Asset(sticker.Filename),
	}))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.writePage(w, r, webtemplates.ErrorPage(http.StatusNotFound))
}

func (h handlers) writeGallery(w http.ResponseWriter, r *http.Request, browser *catalog.Browser) {
	view := h.galleryView(browser)
	page := webtemplates.GalleryPage(view)
	fragment := webtemplates.GalleryGrid(view)
	if err := htmx.RenderPage(w, r, fragment, page, webtemplates.GalleryTitle(view.Query)); err != nil {
		log.Printf("render gallery: %v", err)
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		log.Printf("render page: %v", err)
	}
}

func (h handlers) galleryView(browser *catalog.Browser) webtemplates.GalleryView {
	visible := browser.Visible()
	cards := make([]webtemplates.StickerCard, 0, len(visible))
	for _, sticker := range visible {
		cards = append(cards, webtemplates.StickerCard{
			Filename:   sticker.Filename,
			Caption:    sticker.Caption,
			DetailPath: routepath.Sticker(sticker.Filename),
			AssetPath:  routepath.Asset(sticker.Filename),
		})
	}
	return webtemplates.GalleryView{
		Query:      browser.Query(),
		SearchPath: routepath.Search(browser.Query()),
		Stickers:   cards,
	}
}
