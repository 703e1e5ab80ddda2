package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// StickerPage renders the detail view for one sticker.
func StickerPage(view StickerView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		caption := view.Caption
		if caption == "" {
			caption = view.Filename
		}
		_, err := fmt.Fprintf(w,
			`<article class="sticker-detail"><img src="%s" alt="%s">`+
				`<h1 class="caption">%s</h1>`+
				`<p><a href="/">Back to all stickers</a></p></article>`,
			templ.EscapeString(view.AssetPath),
			templ.EscapeString(caption),
			templ.EscapeString(caption),
		)
		return err
	})
	return Layout(ComposePageTitle(view.Caption), body)
}

// NotFoundPage renders the explicit absent state for a detail route whose
// filename is not in the catalog. A stale or mistyped link lands here; it is
// a page, not a blank view.
func NotFoundPage(filename string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<article class="not-found"><h1>Sticker not found</h1>`+
				`<p>There is no sticker called %s in the catalog.</p>`+
				`<p><a href="/">Back to all stickers</a></p></article>`,
			templ.EscapeString(fmt.Sprintf("%q", filename)),
		)
		return err
	})
	return Layout(ComposePageTitle("Not found"), body)
}
