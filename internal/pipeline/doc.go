// Package pipeline implements the HTXT-to-HTML compilation stages.
//
// The stages run in order and are pure functions of their input:
//   - Tokenize: non-blank lines with an indentation level
//   - Build: a tree of nodes nested by indentation, with parsed attributes
//   - Render: indented HTML with escaping and per-tag special cases
//
// CSSInjection post-processes rendered HTML to add a <style> block.
//
// Build never fails. BuildWithDiagnostics additionally reports the places
// where the source was malformed and the builder had to guess.
package pipeline
