package web

import (
	"net/http"

	"github.com/louisbranch/stickerbook/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers, assets http.Handler, static http.Handler) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" /search", h.handleSearchForm)
	mux.HandleFunc(http.MethodGet+" /search/{query}", h.handleSearchSegment)
	mux.HandleFunc(http.MethodGet+" /stickers/{filename}", h.handleSticker)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)

	if assets != nil {
		mux.Handle(http.MethodGet+" "+routepath.AssetsPrefix, http.StripPrefix(routepath.AssetsPrefix, assets))
	}
	if static != nil {
		mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, static))
	}

	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
