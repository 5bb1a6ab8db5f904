package htxt

import "time"

// Input contains conversion parameters.
type Input struct {
	Source string // HTXT source
	CSS    string // extra CSS appended after the converter style
	PDF    bool   // also render a PDF
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML        []byte
	PDF         []byte // nil unless Input.PDF
	Diagnostics []Diagnostic
}

// Option configures a Converter.
type Option func(*Converter)

type converterConfig struct {
	timeout       time.Duration
	indentWidth   int
	strict        bool
	styleInput    string // name, path, or CSS
	resolvedStyle string
	assetPath     string
}

// defaultTimeout bounds page load and PDF rendering.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("htxt: WithTimeout duration must be positive")
	}
	return func(c *Converter) { c.cfg.timeout = d }
}

// WithIndentWidth sets the spaces per nesting level.
// Panics if n <= 0.
func WithIndentWidth(n int) Option {
	if n <= 0 {
		panic("htxt: WithIndentWidth must be positive")
	}
	return func(c *Converter) { c.cfg.indentWidth = n }
}

// WithStrict makes Convert fail with ErrMalformedSource when the source
// produces any diagnostic.
func WithStrict(strict bool) Option {
	return func(c *Converter) { c.cfg.strict = strict }
}

// WithStyle selects the stylesheet injected into every page: a style name
// ("default"), a path to a CSS file, or literal CSS. Empty means none.
func WithStyle(style string) Option {
	return func(c *Converter) { c.cfg.styleInput = style }
}

// WithAssetPath adds a directory searched for styles/{name}.css before the
// built-in styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) { c.cfg.assetPath = path }
}
