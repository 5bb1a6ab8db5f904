package pipeline

import (
	"context"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into rendered HTML.
type CSSInjection struct{}

// Compile-time interface check.
var _ CSSInjector = (*CSSInjection)(nil)

// InjectCSS inserts a <style> block into htmlContent.
// Tries the line holding </head> first, then just after <body>, then prepends.
// The block takes the indentation of the </head> line plus one level.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		lineStart := strings.LastIndexByte(htmlContent[:idx], '\n') + 1
		lead := htmlContent[lineStart:idx]
		if strings.TrimLeft(lead, " ") == "" {
			return htmlContent[:lineStart] + lead + indentUnit + styleBlock + "\n" + htmlContent[lineStart:]
		}
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.IndexByte(htmlContent[idx:], '>'); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + "\n" + htmlContent
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
