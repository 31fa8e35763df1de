package futsheet

import (
	"fmt"
	"html"
)

// pageTemplate is the fixed document shell. The pre block carries the
// annotated text verbatim and must not gain surrounding indentation, or
// the preformatted rendering would change.
const pageTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>%s</title>
  </head>
  <body>%s<pre style="margin: 0"><code style="background: transparent">%s</code></pre></body>
</html>`

// renderPage wraps annotated sheet text in the document shell. introHTML
// is already-rendered markup and is injected as-is ahead of the pre block;
// only the title is escaped here.
func renderPage(title, introHTML, annotated string) string {
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), introHTML, annotated)
}
