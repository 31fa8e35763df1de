package futsheet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// linkBuilder derives documentation URLs for the sheet's fn declarations.
type linkBuilder struct {
	baseURL string
	version string
}

// MethodURL returns the documentation page for receiver::method. The
// receiver doubles as the module segment (lower-cased) and as the trait
// page name (capitalized).
func (b linkBuilder) MethodURL(receiver, method string) string {
	return fmt.Sprintf("%s/%s/futures/%s/trait.%s.html#method.%s",
		b.baseURL, b.version, strings.ToLower(receiver), capitalize(receiver), method)
}

// FunctionURL returns the documentation page for a free function.
func (b linkBuilder) FunctionURL(name string) string {
	return fmt.Sprintf("%s/%s/futures/future/fn.%s.html", b.baseURL, b.version, name)
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
