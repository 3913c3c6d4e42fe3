package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasics(t *testing.T) {
	got := Render("# Heading\n\nSome **bold** text.")
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading") {
		t.Errorf("missing heading in %q", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("missing bold in %q", got)
	}
}

func TestRenderStripsScripts(t *testing.T) {
	got := Render("hello <script>alert(1)</script> world")
	if strings.Contains(got, "<script>") {
		t.Errorf("script tag survived sanitization: %q", got)
	}
}

func TestRenderLinks(t *testing.T) {
	got := Render("[site](https://example.com)")
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("missing link in %q", got)
	}
	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("expected target=_blank on external link: %q", got)
	}
}
