package futsheet

import "html"

// escapeText converts raw signature text into HTML-entity-safe text.
// &, <, >, and both quote characters become entities; everything else,
// newlines and whitespace included, is preserved exactly. Escaping happens
// exactly once, before any markup is injected, so the annotator's own tags
// never pass through here.
func escapeText(text string) string {
	return html.EscapeString(text)
}
