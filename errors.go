package htxt

import "errors"

// Sentinel errors for library operations.
var (
	ErrMalformedSource  = errors.New("malformed source")
	ErrDecodeSource     = errors.New("cannot decode source")
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
