package futsheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Precompiled rewrite patterns. All of them operate on already-escaped
// text, so the only entities they may see are the ones escapeText emits.
var (
	// Trailing comments, // to end of line.
	commentPattern = regexp.MustCompile(`(//.*)`)

	// Single-uppercase-letter generic type parameters (T, E, U, ...).
	typeParamPattern = regexp.MustCompile(`\b([A-Z])\b`)

	// Function declarations, optionally receiver-qualified.
	fnDeclPattern = regexp.MustCompile(`\bfn ((?:\w+::)?\w+)\b`)

	// Well-known type and trait tokens, whole words only. Occurrences the
	// link pass already consumed (trait.Stream.html inside a URL, Stream::
	// inside a link label) must stay untouched, hence the negative
	// lookahead. RE2 has no lookahead, so this pattern uses regexp2.
	typeTokenPattern = regexp2.MustCompile(
		`\b(usize|SharedError|SharedItem|Task|Vec|Either|Loop|Result|Poll` +
			`|Any|Clone|Into|IntoIterator|Send|Stream|UnwindSafe)\b(?!\.html|::)`, 0)

	// The primary domain types, with the same URL and qualification
	// exclusions as the token pass above.
	domainTypePattern = regexp2.MustCompile(`\b(Future|IntoFuture)\b(?!\.html|::)`, 0)

	// The 'static lifetime as it appears after escaping.
	lifetimePattern = regexp.MustCompile(`(&#39;static)\b`)

	// The thread_local! declaration macro.
	macroPattern = regexp.MustCompile(`\b(thread_local!)`)

	// Closure traits, whole words only.
	closureTraitPattern = regexp.MustCompile(`\b(Fn|FnMut|FnOnce)\b`)
)

// annotator rewrites escaped signature text into styled, linked markup.
type annotator struct {
	palette Palette
	links   linkBuilder
}

// newAnnotator creates an annotator with the given colors and link builder.
func newAnnotator(p Palette, links linkBuilder) *annotator {
	return &annotator{palette: p, links: links}
}

// Annotate applies the rewrite passes to escaped text. Order matters:
// function links must be derived before the domain types are colored, and
// a later pass must never re-match markup an earlier pass injected.
func (a *annotator) Annotate(escaped string) string {
	s := escaped
	s = a.wrapComments(s)
	s = a.markTypeParams(s)
	s = a.linkFunctions(s)
	s = a.colorTypeTokens(s)
	s = a.colorDomainTypes(s)
	s = a.colorLifetimes(s)
	s = a.colorMacros(s)
	s = a.colorClosureTraits(s)
	return s
}

// colorSpan returns a replacement template wrapping capture group 1 in a
// colored span.
func colorSpan(color string) string {
	return `<span style="color: ` + color + `">$1</span>`
}

// wrapComments wraps // comments in the muted comment color.
func (a *annotator) wrapComments(s string) string {
	return commentPattern.ReplaceAllString(s, colorSpan(a.palette.Comment))
}

// markTypeParams wraps single-letter type parameters in <var> markers.
func (a *annotator) markTypeParams(s string) string {
	return typeParamPattern.ReplaceAllString(s, `<var>$1</var>`)
}

// linkFunctions replaces each fn declaration with the styled fn keyword
// followed by the name hyperlinked to its documentation page. A qualified
// Receiver::method keeps the full qualified name as the link label.
func (a *annotator) linkFunctions(s string) string {
	return fnDeclPattern.ReplaceAllStringFunc(s, func(decl string) string {
		name := fnDeclPattern.FindStringSubmatch(decl)[1]

		var url string
		if receiver, method, qualified := strings.Cut(name, "::"); qualified {
			url = a.links.MethodURL(receiver, method)
		} else {
			url = a.links.FunctionURL(name)
		}

		return fmt.Sprintf(`<span style="color: %s">fn</span> <a href="%s">%s</a>`,
			a.palette.Keyword, url, name)
	})
}

// colorTypeTokens colors the known type and trait tokens everywhere the
// link pass did not already claim them.
func (a *annotator) colorTypeTokens(s string) string {
	return replaceAll(typeTokenPattern, s, colorSpan(a.palette.Type))
}

// colorDomainTypes colors Future and IntoFuture everywhere the link pass
// did not already claim them.
func (a *annotator) colorDomainTypes(s string) string {
	return replaceAll(domainTypePattern, s, colorSpan(a.palette.Domain))
}

// replaceAll runs a regexp2 rewrite. The patterns and replacements are
// fixed; a failure here is a bug.
func replaceAll(p *regexp2.Regexp, s, replacement string) string {
	out, err := p.Replace(s, replacement, -1, -1)
	if err != nil {
		panic("futsheet: rewrite pass: " + err.Error())
	}
	return out
}

// colorLifetimes colors the escaped 'static lifetime annotation.
func (a *annotator) colorLifetimes(s string) string {
	return lifetimePattern.ReplaceAllString(s, colorSpan(a.palette.Lifetime))
}

// colorMacros colors the thread_local! declaration.
func (a *annotator) colorMacros(s string) string {
	return macroPattern.ReplaceAllString(s, colorSpan(a.palette.Macro))
}

// colorClosureTraits colors Fn, FnMut, and FnOnce in the fn keyword color.
func (a *annotator) colorClosureTraits(s string) string {
	return closureTraitPattern.ReplaceAllString(s, colorSpan(a.palette.Keyword))
}
