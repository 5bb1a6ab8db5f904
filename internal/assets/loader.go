package assets

// StyleLoader loads CSS stylesheets by name.
type StyleLoader interface {
	// LoadStyle returns the stylesheet named name (without .css).
	// Returns ErrStyleNotFound or ErrInvalidAssetName.
	LoadStyle(name string) (string, error)

	// Styles lists the available style names, sorted.
	Styles() []string
}
