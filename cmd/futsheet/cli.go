package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	futsheet "github.com/alnah/go-futsheet"
	"github.com/alnah/go-futsheet/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrReadText    = errors.New("failed to read signature text file")
	ErrReadIntro   = errors.New("failed to read intro file")
	ErrWriteOutput = errors.New("failed to write output file")
	ErrBadTimeout  = errors.New("invalid timeout")
)

// sheetRenderer is the interface for the rendering pipeline.
type sheetRenderer interface {
	Render(ctx context.Context, input futsheet.Input) (*futsheet.Result, error)
	Close() error
}

// settings holds the effective configuration: flags merged over config-file
// values merged over built-in defaults.
type settings struct {
	output  string
	pdf     string
	version string
	title   string
	theme   string
	text    string
	intro   string
	timeout time.Duration
}

// resolveSettings merges flag values over the config file. Flags win.
func resolveSettings(f *sheetFlags) (*settings, error) {
	s := &settings{}

	if f.config != "" {
		cfg, err := config.Load(f.config)
		if err != nil {
			return nil, err
		}
		s.output = cfg.Output
		s.pdf = cfg.PDF
		s.version = cfg.Version
		s.title = cfg.Title
		s.theme = cfg.Theme
		s.text = cfg.Text
		s.intro = cfg.Intro
		if cfg.Timeout != "" {
			d, err := parseTimeout(cfg.Timeout)
			if err != nil {
				return nil, err
			}
			s.timeout = d
		}
	}

	overlay(&s.output, f.output)
	overlay(&s.pdf, f.pdf)
	overlay(&s.version, f.versionTag)
	overlay(&s.title, f.title)
	overlay(&s.theme, f.theme)
	overlay(&s.text, f.text)
	overlay(&s.intro, f.intro)
	if f.timeout != "" {
		d, err := parseTimeout(f.timeout)
		if err != nil {
			return nil, err
		}
		s.timeout = d
	}

	return s, nil
}

// overlay replaces *dst with v when v is set.
func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseTimeout parses a positive duration string.
func parseTimeout(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeout, v)
	}
	return d, nil
}

// rendererOptions converts settings into renderer options.
func rendererOptions(s *settings) []futsheet.Option {
	var opts []futsheet.Option
	if s.version != "" {
		opts = append(opts, futsheet.WithVersion(s.version))
	}
	if s.title != "" {
		opts = append(opts, futsheet.WithTitle(s.title))
	}
	if s.theme != "" {
		opts = append(opts, futsheet.WithTheme(s.theme))
	}
	if s.timeout > 0 {
		opts = append(opts, futsheet.WithTimeout(s.timeout))
	}
	return opts
}

// run reads the inputs, renders the page, and writes the outputs.
// Progress messages go to stderr so stdout stays a clean document stream.
func run(ctx context.Context, s *settings, renderer sheetRenderer, stdout, stderr io.Writer, quiet bool) error {
	input := futsheet.Input{PDF: s.pdf != ""}

	if s.text != "" {
		content, err := os.ReadFile(s.text) // #nosec G304 -- path comes from the user's own flag
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadText, err)
		}
		input.Text = string(content)
	}

	if s.intro != "" {
		content, err := os.ReadFile(s.intro) // #nosec G304 -- path comes from the user's own flag
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadIntro, err)
		}
		input.Intro = string(content)
	}

	result, err := renderer.Render(ctx, input)
	if err != nil {
		return err
	}

	if s.output == "" {
		if _, err := io.WriteString(stdout, result.HTML); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	} else {
		if err := atomic.WriteFile(s.output, strings.NewReader(result.HTML)); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !quiet {
			fmt.Fprintf(stderr, "Created %s\n", s.output)
		}
	}

	if s.pdf != "" {
		if err := atomic.WriteFile(s.pdf, bytes.NewReader(result.PDF)); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !quiet {
			fmt.Fprintf(stderr, "Created %s\n", s.pdf)
		}
	}

	return nil
}
