package futsheet

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	t.Parallel()

	t.Run("document shell", func(t *testing.T) {
		t.Parallel()

		got := renderPage("Cheatsheet for Futures", "", "CONTENT")

		if !strings.HasPrefix(got, "<!DOCTYPE html>\n") {
			t.Error("document must start with a doctype")
		}
		for _, want := range []string{
			`<meta charset="utf-8"/>`,
			`<meta name="viewport" content="width=device-width, initial-scale=1"/>`,
			"<title>Cheatsheet for Futures</title>",
			`<pre style="margin: 0"><code style="background: transparent">CONTENT</code></pre>`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("document missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("exactly one title, pre, and code element", func(t *testing.T) {
		t.Parallel()

		got := renderPage("t", "", "x")

		for tag, want := range map[string]int{"<title>": 1, "<pre": 1, "<code": 1} {
			if n := strings.Count(got, tag); n != want {
				t.Errorf("count(%s) = %d, want %d", tag, n, want)
			}
		}
	})

	t.Run("no indentation is injected around the content", func(t *testing.T) {
		t.Parallel()

		got := renderPage("t", "", "line1\nline2")

		if !strings.Contains(got, ">line1\nline2</code>") {
			t.Errorf("preformatted content altered:\n%s", got)
		}
	})

	t.Run("title is escaped", func(t *testing.T) {
		t.Parallel()

		got := renderPage(`<b>"bold" & brash</b>`, "", "x")

		if strings.Contains(got, "<b>") {
			t.Error("title markup must be escaped")
		}
		if !strings.Contains(got, "<title>&lt;b&gt;&#34;bold&#34; &amp; brash&lt;/b&gt;</title>") {
			t.Errorf("escaped title missing:\n%s", got)
		}
	})

	t.Run("intro fragment sits before the pre block", func(t *testing.T) {
		t.Parallel()

		got := renderPage("t", "<p>hello</p>", "x")

		intro := strings.Index(got, "<p>hello</p>")
		pre := strings.Index(got, "<pre")
		if intro == -1 || pre == -1 || intro > pre {
			t.Errorf("intro not placed before pre block:\n%s", got)
		}
	})

	t.Run("empty intro keeps body and pre adjacent", func(t *testing.T) {
		t.Parallel()

		got := renderPage("t", "", "x")

		if !strings.Contains(got, "<body><pre") {
			t.Errorf("body and pre not adjacent:\n%s", got)
		}
	})
}
