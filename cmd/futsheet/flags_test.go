package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"futsheet"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.output != "" || f.pdf != "" || f.versionTag != "" || f.theme != "" {
			t.Errorf("defaults not empty: %+v", f)
		}
		if f.quiet || f.verbose || f.version {
			t.Errorf("bool defaults not false: %+v", f)
		}
	})

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{
			"futsheet",
			"-o", "sheet.html",
			"--pdf", "sheet.pdf",
			"--version-tag", "0.2.0",
			"--title", "My Sheet",
			"--theme", "github",
			"--text", "alt.txt",
			"--intro", "intro.md",
			"-c", "cfg.yaml",
			"-t", "45s",
			"-q",
		})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}

		if f.output != "sheet.html" {
			t.Errorf("output = %q", f.output)
		}
		if f.pdf != "sheet.pdf" {
			t.Errorf("pdf = %q", f.pdf)
		}
		if f.versionTag != "0.2.0" {
			t.Errorf("versionTag = %q", f.versionTag)
		}
		if f.title != "My Sheet" {
			t.Errorf("title = %q", f.title)
		}
		if f.theme != "github" {
			t.Errorf("theme = %q", f.theme)
		}
		if f.text != "alt.txt" || f.intro != "intro.md" {
			t.Errorf("text = %q, intro = %q", f.text, f.intro)
		}
		if f.config != "cfg.yaml" || f.timeout != "45s" {
			t.Errorf("config = %q, timeout = %q", f.config, f.timeout)
		}
		if !f.quiet {
			t.Error("quiet not set")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags([]string{"futsheet", "--bogus"}); err == nil {
			t.Error("parseFlags(--bogus) must fail")
		}
	})

	t.Run("positional argument rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := parseFlags([]string{"futsheet", "stray"}); err == nil {
			t.Error("parseFlags(stray) must fail")
		}
		if _, err := parseFlags([]string{"futsheet", "-q", "stray"}); err == nil {
			t.Error("parseFlags(-q stray) must fail")
		}
	})
}
