package futsheet

import "errors"

// Sentinel errors for library operations.
var (
	ErrIntroConversion = errors.New("intro conversion failed")
	ErrUnknownTheme    = errors.New("unknown color theme")

	// Browser errors for PDF output.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
