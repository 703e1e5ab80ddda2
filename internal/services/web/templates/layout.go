package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const htmxScriptSrc = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"

// Layout wraps body in the shared HTML shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title>`+
				`<link rel="stylesheet" href="/static/styles.css">`+
				`<script src="%s" defer></script>`+
				`</head><body>`,
			templ.EscapeString(title),
			htmxScriptSrc,
		); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<header class="site-header"><a href="/" class="site-title">%s</a></header><main>`,
			templ.EscapeString(AppName),
		); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
