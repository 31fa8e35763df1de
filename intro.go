package futsheet

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// introConverter abstracts Markdown conversion for the intro blurb.
type introConverter interface {
	ToHTML(ctx context.Context, markdown string) (string, error)
}

// goldmarkIntro converts intro Markdown to an HTML fragment using goldmark
// (pure Go). Code fences are highlighted with inline styles so the page
// stays self-contained.
type goldmarkIntro struct {
	md goldmark.Markdown
}

// newGoldmarkIntro creates a goldmarkIntro with GFM extensions and syntax
// highlighting.
func newGoldmarkIntro() *goldmarkIntro {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles, no external stylesheet
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags, matching the document shell
		),
	)
	return &goldmarkIntro{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *goldmarkIntro) ToHTML(ctx context.Context, markdown string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrIntroConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
