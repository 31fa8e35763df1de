package futsheet

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Palette holds the annotation colors as CSS color values.
type Palette struct {
	Comment  string // trailing // comments
	Keyword  string // the fn keyword and the closure traits
	Type     string // known type and trait tokens
	Domain   string // Future and IntoFuture
	Lifetime string // 'static
	Macro    string // thread_local!
}

// DefaultPalette returns the stock colors. These are the defaults so that
// default output stays byte-stable across runs and releases.
func DefaultPalette() Palette {
	return Palette{
		Comment:  "#8e908c",
		Keyword:  "#8959a8",
		Type:     "#4271ae",
		Domain:   "#c82829",
		Lifetime: "#b76514",
		Macro:    "#3e999f",
	}
}

// PaletteFromStyle derives a palette from a registered chroma style.
// Colors the style leaves unset fall back to the stock palette, so a
// sparse style still produces a fully colored sheet.
func PaletteFromStyle(name string) (Palette, error) {
	if !styleRegistered(name) {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	style := styles.Get(name)

	p := DefaultPalette()
	assign := func(dst *string, ttype chroma.TokenType) {
		if c := style.Get(ttype).Colour; c.IsSet() {
			*dst = c.String()
		}
	}
	assign(&p.Comment, chroma.Comment)
	assign(&p.Keyword, chroma.Keyword)
	assign(&p.Type, chroma.KeywordType)
	assign(&p.Domain, chroma.NameClass)
	assign(&p.Lifetime, chroma.NameAttribute)
	assign(&p.Macro, chroma.CommentPreproc)
	return p, nil
}

// styleRegistered reports whether name is in the chroma style registry.
// styles.Get falls back to a default style for unknown names, which would
// silently ignore a typo, so membership is checked explicitly.
func styleRegistered(name string) bool {
	for _, n := range styles.Names() {
		if n == name {
			return true
		}
	}
	return false
}
