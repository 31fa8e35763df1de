// Package assets provides the signature sheets embedded in the binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed sheets/*
var sheets embed.FS

// DefaultSheetName is the sheet rendered when no text is supplied.
const DefaultSheetName = "futures"

// Sentinel errors for asset loading.
var (
	ErrSheetNotFound    = errors.New("sheet not found")
	ErrInvalidSheetName = errors.New("invalid sheet name")
)

// LoadSheet returns the embedded signature text for name.
// The name should not include the .txt extension.
func LoadSheet(name string) (string, error) {
	if err := ValidateSheetName(name); err != nil {
		return "", err
	}

	content, err := sheets.ReadFile("sheets/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	return string(content), nil
}

// DefaultSheet returns the built-in futures combinator sheet.
// Panics if the embedded asset is missing, which indicates a broken build.
func DefaultSheet() string {
	content, err := LoadSheet(DefaultSheetName)
	if err != nil {
		panic("assets: embedded default sheet missing: " + err.Error())
	}
	return content
}

// ValidateSheetName rejects names that could escape the embedded sheet
// directory or hide the extension suffix.
func ValidateSheetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSheetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidSheetName, name)
	}
	return nil
}
