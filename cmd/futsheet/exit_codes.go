package main

import (
	"errors"
	"os"

	futsheet "github.com/alnah/go-futsheet"
	"github.com/alnah/go-futsheet/internal/config"
)

// Exit codes for the futsheet CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Page rendered and written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or theme
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors during PDF output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, futsheet.ErrBrowserConnect) ||
		errors.Is(err, futsheet.ErrPageCreate) ||
		errors.Is(err, futsheet.ErrPageLoad) ||
		errors.Is(err, futsheet.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadText) ||
		errors.Is(err, ErrReadIntro) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrBadTimeout) ||
		errors.Is(err, futsheet.ErrUnknownTheme) {
		return ExitUsage
	}

	return ExitGeneral
}
