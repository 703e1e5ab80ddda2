package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPage renders a generic error page for non-catalog routes.
func ErrorPage(statusCode int) templ.Component {
	heading := "Something went wrong"
	if statusCode == http.StatusNotFound {
		heading = "Page not found"
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<article class="not-found"><h1>%s</h1>`+
				`<p><a href="/">Back to all stickers</a></p></article>`,
			templ.EscapeString(heading),
		)
		return err
	})
	return Layout(ComposePageTitle(heading), body)
}
