package pipeline

import "fmt"

// DiagnosticKind classifies a structural oddity found while building the tree.
type DiagnosticKind int

const (
	// UnterminatedQuote means an attribute value quote was never closed.
	UnterminatedQuote DiagnosticKind = iota + 1
	// MalformedAttributeSpec means the line has a '[' or ']' without its pair.
	MalformedAttributeSpec
	// IndentNotMultiple means the leading spaces are not a multiple of the indent width.
	IndentNotMultiple
	// EmptyTag means an element line produced an empty tag name.
	EmptyTag
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnterminatedQuote:
		return "unterminated quote"
	case MalformedAttributeSpec:
		return "malformed attribute spec"
	case IndentNotMultiple:
		return "uneven indentation"
	case EmptyTag:
		return "empty tag"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a non-fatal report about the source. The builder always
// produces a tree; diagnostics only describe what it had to guess.
type Diagnostic struct {
	Line int
	Kind DiagnosticKind
	Text string // offending line content
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %q", d.Line, d.Kind, d.Text)
}
