package main

import (
	"fmt"
	"io"
)

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `futsheet - render a futures combinator cheatsheet as HTML

Usage:
  futsheet [flags]

The finished HTML document goes to stdout unless -o is given.

Flags:
  -o, --output FILE      HTML output file (default: stdout)
      --pdf FILE         also render a PDF to this path (needs Chrome)
      --version-tag TAG  documentation release for generated links
      --title TEXT       page title
      --theme NAME       chroma style name for the palette
      --text FILE        alternate signature text file
      --intro FILE       Markdown file rendered above the sheet
  -c, --config FILE      YAML config file (flags override it)
  -t, --timeout DUR      PDF generation timeout (e.g., 30s, 2m)
  -q, --quiet            only show errors
  -v, --verbose          show progress on stderr
      --version          print version and exit

Examples:
  futsheet > cheatsheet.html
  futsheet -o cheatsheet.html --theme github
  futsheet --pdf cheatsheet.pdf --intro intro.md
`)
}
