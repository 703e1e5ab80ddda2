package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// GalleryGrid renders the sticker grid for a view. This is the fragment HTMX
// swaps on incremental typing; GalleryPage embeds it for full page loads.
func GalleryGrid(view GalleryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(view.Stickers) == 0 {
			// An empty result is a normal display state, not an error.
			_, err := fmt.Fprintf(w,
				`<p class="empty-state">No stickers match %s.</p>`,
				templ.EscapeString(fmt.Sprintf("%q", view.Query)),
			)
			return err
		}
		if _, err := io.WriteString(w, `<ul class="sticker-grid">`); err != nil {
			return err
		}
		for _, card := range view.Stickers {
			if _, err := fmt.Fprintf(w,
				`<li class="sticker-card"><a href="%s"><img src="%s" alt="%s" loading="lazy"><span class="caption">%s</span></a></li>`,
				templ.EscapeString(card.DetailPath),
				templ.EscapeString(card.AssetPath),
				templ.EscapeString(card.Caption),
				templ.EscapeString(card.Caption),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

// GalleryPage renders the full catalog page: search box plus grid. The
// search input fires an HTMX GET per keystroke; the handler answers with the
// grid fragment and an HX-Replace-Url header, so typing replaces the current
// history entry instead of pushing one per character.
func GalleryPage(view GalleryView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form class="search" role="search" action="/search" method="get">`+
				`<input type="search" name="query" value="%s" placeholder="Search captions"`+
				` hx-get="/search" hx-trigger="input changed delay:200ms, search"`+
				` hx-target="#gallery" hx-swap="innerHTML" autocomplete="off">`+
				`</form><div id="gallery">`,
			templ.EscapeString(view.Query),
		); err != nil {
			return err
		}
		if err := GalleryGrid(view).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return Layout(GalleryTitle(view.Query), body)
}
