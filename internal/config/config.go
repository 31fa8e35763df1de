// Package config loads the optional YAML configuration for the futsheet CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength   = 200  // Page title
	MaxVersionLength = 50   // Documentation release tag
	MaxThemeLength   = 50   // chroma style name
	MaxPathLength    = 4096 // Output and input paths
)

// MaxConfigSize limits config input to prevent memory exhaustion (1MB).
const MaxConfigSize = 1 << 20

// Config holds CLI configuration for page generation. Empty fields mean
// "use the built-in default"; flags override config values.
type Config struct {
	Version string `yaml:"version"` // docs release for generated links
	Title   string `yaml:"title"`   // page title
	Theme   string `yaml:"theme"`   // chroma style name for the palette
	Output  string `yaml:"output"`  // HTML output path ("" = stdout)
	PDF     string `yaml:"pdf"`     // PDF output path ("" = no PDF)
	Text    string `yaml:"text"`    // alternate signature text file
	Intro   string `yaml:"intro"`   // intro Markdown file
	Timeout string `yaml:"timeout"` // PDF timeout, e.g. "30s", "2m"
}

// Load reads and validates a config file. Unknown keys are rejected so a
// typo fails loudly instead of silently falling back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own -c flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces field length limits.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"version", c.Version, MaxVersionLength},
		{"title", c.Title, MaxTitleLength},
		{"theme", c.Theme, MaxThemeLength},
		{"output", c.Output, MaxPathLength},
		{"pdf", c.PDF, MaxPathLength},
		{"text", c.Text, MaxPathLength},
		{"intro", c.Intro, MaxPathLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}
	return nil
}
