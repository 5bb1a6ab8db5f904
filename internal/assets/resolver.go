package assets

import (
	"errors"
	"sort"
)

// StyleResolver tries a custom directory before the embedded styles.
type StyleResolver struct {
	custom   StyleLoader // nil without a custom base path
	embedded StyleLoader
}

// NewStyleResolver creates a StyleResolver. An empty customBasePath
// means embedded styles only.
func NewStyleResolver(customBasePath string) (*StyleResolver, error) {
	r := &StyleResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle loads name from the custom directory, falling back to the
// embedded styles only when the custom directory does not have it.
func (r *StyleResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil || !errors.Is(err, ErrStyleNotFound) {
		return css, err
	}
	return r.embedded.LoadStyle(name)
}

// Styles merges custom and embedded style names.
func (r *StyleResolver) Styles() []string {
	names := r.embedded.Styles()
	if r.custom == nil {
		return names
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range r.custom.Styles() {
		if !seen[n] {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *StyleResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ StyleLoader = (*StyleResolver)(nil)
