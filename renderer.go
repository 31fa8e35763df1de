package futsheet

import (
	"context"
	"fmt"

	"github.com/alnah/go-futsheet/internal/assets"
)

// Compile-time interface implementation checks.
var (
	_ introConverter = (*goldmarkIntro)(nil)
	_ pdfConverter   = (*rodConverter)(nil)
)

// Renderer orchestrates the escape, annotate, and page stages.
// Create with NewRenderer, render with Render, and Close when done if PDF
// output was used.
type Renderer struct {
	cfg          rendererConfig
	annotator    *annotator
	intro        introConverter
	pdfConverter pdfConverter
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g. WithVersion, WithTheme).
// Returns ErrUnknownTheme when a configured theme is not registered.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			version: DefaultVersion,
			title:   DefaultTitle,
			baseURL: DefaultBaseURL,
			palette: DefaultPalette(),
			timeout: defaultTimeout,
		},
		intro: newGoldmarkIntro(),
	}

	for _, opt := range opts {
		opt(r)
	}

	// Resolve WithTheme against the chroma style registry.
	if r.cfg.theme != "" {
		palette, err := PaletteFromStyle(r.cfg.theme)
		if err != nil {
			return nil, err
		}
		r.cfg.palette = palette
	}

	r.annotator = newAnnotator(r.cfg.palette, linkBuilder{
		baseURL: r.cfg.baseURL,
		version: r.cfg.version,
	})

	// Create PDF converter if not injected (e.g., by tests). The browser
	// itself starts lazily on first PDF render.
	if r.pdfConverter == nil {
		r.pdfConverter = newRodConverter(r.cfg.timeout)
	}

	return r, nil
}

// Render runs the pipeline: raw text -> escaped text -> annotated text ->
// final document. The same input always produces byte-identical HTML.
func (r *Renderer) Render(ctx context.Context, input Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := input.Text
	if text == "" {
		text = assets.DefaultSheet()
	}

	annotated := r.annotator.Annotate(escapeText(text))

	var introHTML string
	if input.Intro != "" {
		var err error
		introHTML, err = r.intro.ToHTML(ctx, input.Intro)
		if err != nil {
			return nil, fmt.Errorf("converting intro: %w", err)
		}
	}

	title := input.Title
	if title == "" {
		title = r.cfg.title
	}

	result := &Result{HTML: renderPage(title, introHTML, annotated)}

	if input.PDF {
		pdfBytes, err := r.pdfConverter.ToPDF(ctx, result.HTML)
		if err != nil {
			return nil, fmt.Errorf("converting to PDF: %w", err)
		}
		result.PDF = pdfBytes
	}

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.pdfConverter != nil {
		return r.pdfConverter.Close()
	}
	return nil
}
