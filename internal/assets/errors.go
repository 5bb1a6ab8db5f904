package assets

import "errors"

// Sentinel errors for style loading.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName indicates the name contains separators or dots.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the custom directory is unusable.
	ErrInvalidBasePath = errors.New("invalid base path")

	ErrAssetRead     = errors.New("failed to read asset")
	ErrPathTraversal = errors.New("path traversal detected")
)
