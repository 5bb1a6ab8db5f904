package htxt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-htxt/internal/assets"
	"github.com/alnah/go-htxt/internal/fileutil"
	"github.com/alnah/go-htxt/internal/pipeline"
)

var (
	_ pipeline.CSSInjector = (*pipeline.CSSInjection)(nil)
	_ pdfConverter         = (*rodConverter)(nil)
	_ pdfRenderer          = (*rodRenderer)(nil)
)

// Converter compiles HTXT into styled HTML and, on request, PDF.
// Create with NewConverter and Close when done. A Converter is not safe
// for concurrent use; use a ConverterPool to convert in parallel.
type Converter struct {
	cfg          converterConfig
	styles       assets.StyleLoader
	cssInjector  pipeline.CSSInjector
	pdfConverter pdfConverter
}

// NewConverter creates a Converter. It fails if the asset path is not a
// directory or the style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: defaultTimeout, indentWidth: DefaultIndentWidth},
		cssInjector: &pipeline.CSSInjection{},
	}
	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewStyleResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.styles = resolver

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}
	return c, nil
}

// Convert compiles input.Source, injects the configured CSS, and renders
// a PDF when input.PDF is set. Internal panics are returned as errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := Parse(input.Source, c.cfg.indentWidth)
	if c.cfg.strict && len(doc.Diagnostics) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSource, summarize(doc.Diagnostics))
	}

	html := doc.HTML()

	css := c.cfg.resolvedStyle
	if input.CSS != "" {
		if css != "" {
			css += "\n"
		}
		css += input.CSS
	}
	html = c.cssInjector.InjectCSS(ctx, html, css)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &ConvertResult{HTML: []byte(html), Diagnostics: doc.Diagnostics}
	if !input.PDF {
		return res, nil
	}

	pdf, err := c.pdfConverter.ToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// Close releases the browser, if one was started.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// AvailableStyles lists the built-in style names plus those found under
// assetPath/styles.
func AvailableStyles(assetPath string) []string {
	r, err := assets.NewStyleResolver(assetPath)
	if err != nil {
		return assets.NewEmbeddedLoader().Styles()
	}
	return r.Styles()
}

// resolveStyle turns the style option (path, CSS, or name) into CSS.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	switch {
	case input == "":
		return nil
	case fileutil.IsCSS(input):
		c.cfg.resolvedStyle = input
		return nil
	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.styles.LoadStyle(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// summarize joins the first few diagnostics for an error message.
func summarize(diags []Diagnostic) string {
	const limit = 3
	parts := make([]string, 0, limit)
	for i, d := range diags {
		if i == limit {
			parts = append(parts, fmt.Sprintf("and %d more", len(diags)-limit))
			break
		}
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "; ")
}
