package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// sheetFlags holds all flags for the futsheet CLI.
type sheetFlags struct {
	output     string
	pdf        string
	versionTag string
	title      string
	theme      string
	text       string
	intro      string
	config     string
	timeout    string
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses CLI flags. The tool takes no positional arguments and
// rejects any it finds.
func parseFlags(args []string) (*sheetFlags, error) {
	fs := flag.NewFlagSet("futsheet", flag.ContinueOnError)
	f := &sheetFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "HTML output file (default: stdout)")
	fs.StringVar(&f.pdf, "pdf", "", "also render a PDF to this path")
	fs.StringVar(&f.versionTag, "version-tag", "", "documentation release for generated links")
	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVar(&f.theme, "theme", "", "chroma style name for the palette")
	fs.StringVar(&f.text, "text", "", "alternate signature text file")
	fs.StringVar(&f.intro, "intro", "", "Markdown file rendered above the sheet")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument %q, see --help", rest[0])
	}

	return f, nil
}
