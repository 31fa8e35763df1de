// Package futsheet renders a syntax-highlighted HTML cheatsheet of
// futures combinator signatures.
//
// # Quick Start
//
// Create a renderer and render the built-in sheet:
//
//	r, err := futsheet.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	result, err := r.Render(ctx, futsheet.Input{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cheatsheet.html", []byte(result.HTML), 0644)
//
// The result contains the finished HTML document (result.HTML) and, when
// Input.PDF is set, the page rendered to PDF (result.PDF).
//
// # Rendering Pipeline
//
// The pipeline runs in three stages over the signature text:
//
//  1. Escaping: the raw text becomes HTML-entity-safe text, exactly once.
//  2. Annotation: an ordered sequence of rewrite passes wraps comments,
//     generic type parameters, known type tokens, the domain types, and
//     closure traits in styling markup, and turns each fn declaration into
//     a hyperlink to its versioned docs.rs page.
//  3. Page rendering: the annotated text is wrapped verbatim in a fixed
//     HTML document shell.
//
// An optional Markdown intro (Input.Intro) is converted via Goldmark and
// placed above the preformatted sheet.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := futsheet.NewRenderer(
//	    futsheet.WithVersion("0.1.13"),
//	    futsheet.WithTheme("github"),
//	    futsheet.WithTitle("Cheatsheet for Futures"),
//	)
//
// WithTheme derives the annotation colors from a registered chroma style;
// without it the stock palette is used, so default output is byte-stable
// across runs.
//
// # Browser Requirements
//
// PDF output requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Set ROD_BROWSER_BIN to use a pre-installed browser; in CI or when
// ROD_BROWSER_BIN is set the browser runs with --no-sandbox.
package futsheet
