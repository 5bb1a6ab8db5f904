package main

import (
	"errors"
	"os"

	"github.com/alnah/go-htxt"
	"github.com/alnah/go-htxt/internal/config"
)

// Exit codes. 0 success, 1 general, 2 usage, then tool-specific codes < 126.
const (
	ExitSuccess = 0
	ExitGeneral = 1 // unexpected errors, missing input in the plain form
	ExitUsage   = 2 // flags, config, style, strict-mode failures
	ExitIO      = 3 // reading sources, writing outputs
	ExitBrowser = 4 // headless Chrome
)

// exitCodeFor classifies err with errors.Is; wrap with %w to keep it visible.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, htxt.ErrBrowserConnect),
		errors.Is(err, htxt.ErrPageCreate),
		errors.Is(err, htxt.ErrPageLoad),
		errors.Is(err, htxt.ErrPDFGeneration):
		return ExitBrowser
	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrReadSource),
		errors.Is(err, ErrWriteOutput),
		errors.Is(err, htxt.ErrDecodeSource):
		return ExitIO
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrInvalidValue),
		errors.Is(err, htxt.ErrMalformedSource),
		errors.Is(err, htxt.ErrStyleNotFound),
		errors.Is(err, htxt.ErrInvalidAssetPath),
		errors.Is(err, ErrInvalidWorkerCount),
		errors.Is(err, ErrInvalidTimeout),
		errors.Is(err, ErrUsage):
		return ExitUsage
	}
	return ExitGeneral
}
