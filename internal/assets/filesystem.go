package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads styles from {basePath}/styles/{name}.css.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath unless basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	// Containment checks compare resolved paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadStyle reads the named stylesheet from disk.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, "styles", name+".css")
	if err := f.contain(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- name validated and path contained
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// Styles lists the .css files under {basePath}/styles.
func (f *FilesystemLoader) Styles() []string {
	entries, err := os.ReadDir(filepath.Join(f.basePath, "styles"))
	if err != nil {
		return nil
	}
	return cssNames(entries)
}

// contain returns ErrPathTraversal when path, after symlink resolution,
// lies outside basePath.
func (f *FilesystemLoader) contain(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}
	if !strings.HasPrefix(abs, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

var _ StyleLoader = (*FilesystemLoader)(nil)
