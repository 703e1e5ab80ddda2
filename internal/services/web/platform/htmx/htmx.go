// Package htmx detects HTMX-initiated requests and renders fragment or
// full-page responses accordingly.
package htmx

import (
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage writes fragment for HTMX requests and full otherwise.
//
// HTMX swaps only the targeted element, so the fragment carries a title tag
// for hx-swap title propagation. Either component may be nil, in which case
// the other serves both paths.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment, full templ.Component, title string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if IsHTMXRequest(r) {
		if fragment == nil {
			fragment = full
		}
		if fragment == nil {
			return nil
		}
		if tag := TitleTag(title); tag != "" {
			if _, err := w.Write([]byte(tag)); err != nil {
				return err
			}
		}
		return fragment.Render(r.Context(), w)
	}

	if full == nil {
		full = fragment
	}
	if full == nil {
		return nil
	}
	return full.Render(r.Context(), w)
}
