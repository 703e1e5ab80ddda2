package htmx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("expected plain request to not be HTMX")
	}

	req.Header.Set(RequestHeaderKey, "true")
	if !IsHTMXRequest(req) {
		t.Fatal("expected HX-Request header to mark request as HTMX")
	}

	if IsHTMXRequest(nil) {
		t.Fatal("expected nil request to not be HTMX")
	}
}

func TestTitleTagEscapes(t *testing.T) {
	t.Parallel()

	if got := TitleTag("a <b> c"); got != "<title>a &lt;b&gt; c</title>" {
		t.Fatalf("TitleTag = %q", got)
	}
	if got := TitleTag("   "); got != "" {
		t.Fatalf("expected empty tag for blank title, got %q", got)
	}
}

func TestRenderPageFullVsFragment(t *testing.T) {
	t.Parallel()

	fragment := textComponent("<div>fragment</div>")
	full := textComponent("<html>full</html>")

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	if err := RenderPage(rr, plain, fragment, full, "Title"); err != nil {
		t.Fatalf("render full: %v", err)
	}
	if !strings.Contains(rr.Body.String(), "full") {
		t.Fatalf("expected full page, got %q", rr.Body.String())
	}

	partial := httptest.NewRequest(http.MethodGet, "/", nil)
	partial.Header.Set(RequestHeaderKey, "true")
	rr = httptest.NewRecorder()
	if err := RenderPage(rr, partial, fragment, full, "Title"); err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "fragment") {
		t.Fatalf("expected fragment body, got %q", body)
	}
	if !strings.Contains(body, "<title>Title</title>") {
		t.Fatalf("expected injected title, got %q", body)
	}
}

func TestRenderPageNilComponents(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := RenderPage(rr, req, nil, nil, ""); err != nil {
		t.Fatalf("render with nil components: %v", err)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}
