package futsheet

import "time"

// Defaults for the rendered page. The version and base URL reproduce the
// docs.rs release the built-in sheet documents.
const (
	DefaultVersion = "0.1.13"
	DefaultTitle   = "Cheatsheet for Futures"
	DefaultBaseURL = "https://docs.rs/futures"
)

// Input contains rendering parameters.
type Input struct {
	Text  string // signature text (optional, "" = embedded default sheet)
	Intro string // Markdown rendered above the sheet (optional)
	Title string // page title (optional, "" = configured default)
	PDF   bool   // also render the page to PDF via headless Chrome
}

// Result holds the rendered page and, when requested, its PDF form.
type Result struct {
	HTML string
	PDF  []byte
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	version string
	title   string
	baseURL string
	palette Palette
	theme   string
	timeout time.Duration
}

// defaultTimeout bounds PDF generation when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithVersion sets the documentation release the generated links target.
func WithVersion(v string) Option {
	return func(r *Renderer) {
		r.cfg.version = v
	}
}

// WithTitle sets the page title used when Input.Title is empty.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.cfg.title = title
	}
}

// WithBaseURL sets the root of the documentation site links point at.
func WithBaseURL(url string) Option {
	return func(r *Renderer) {
		r.cfg.baseURL = url
	}
}

// WithPalette sets the annotation colors directly.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.cfg.palette = p
	}
}

// WithTheme derives the annotation colors from a registered chroma style.
// NewRenderer returns ErrUnknownTheme when the name is not registered.
// Takes precedence over WithPalette.
func WithTheme(name string) Option {
	return func(r *Renderer) {
		r.cfg.theme = name
	}
}

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("futsheet: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}
