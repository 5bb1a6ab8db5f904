package htxt

import (
	"fmt"
	"strings"

	"github.com/alnah/go-htxt/internal/pipeline"
)

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = pipeline.DefaultIndentWidth

// Compile converts HTXT source to HTML using the default indent width.
// Empty or whitespace-only input yields "".
func Compile(src string) string {
	return Parse(src, DefaultIndentWidth).HTML()
}

// Document is a parsed HTXT source.
type Document struct {
	root        *pipeline.Node
	Diagnostics []Diagnostic
}

// Parse tokenizes and builds src. indentWidth values below 1 select
// DefaultIndentWidth.
func Parse(src string, indentWidth int) *Document {
	if indentWidth < 1 {
		indentWidth = DefaultIndentWidth
	}
	root, diags := pipeline.BuildWithDiagnostics(pipeline.Tokenize(src, indentWidth))
	return &Document{root: root, Diagnostics: toDiagnostics(diags)}
}

// HTML renders the document.
func (d *Document) HTML() string {
	return pipeline.Render(d.root)
}

// Outline describes the parsed tree one node per line, indented two spaces
// per depth, for debugging sources that do not render as expected.
func (d *Document) Outline() string {
	var b strings.Builder
	pipeline.Walk(d.root, func(n *pipeline.Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		if n.Tag == pipeline.TagText {
			fmt.Fprintf(&b, "#text %q\n", n.Content)
			return
		}
		b.WriteString(n.Tag)
		for _, a := range n.Attrs.All() {
			fmt.Fprintf(&b, " %s=%q", a.Key, a.Value)
		}
		if n.SelfClosing {
			b.WriteString(" /")
		}
		if n.Content != "" {
			fmt.Fprintf(&b, " %q", n.Content)
		}
		b.WriteByte('\n')
	})
	return b.String()
}

// Diagnostic reports a line the compiler had to guess about.
type Diagnostic struct {
	Line int    // 1-based source line
	Kind string // e.g. "unterminated quote"
	Text string // the offending line without its indentation
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %q", d.Line, d.Kind, d.Text)
}

func toDiagnostics(in []pipeline.Diagnostic) []Diagnostic {
	if len(in) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(in))
	for i, d := range in {
		out[i] = Diagnostic{Line: d.Line, Kind: d.Kind.String(), Text: d.Text}
	}
	return out
}
