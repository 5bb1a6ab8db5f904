// Package htxt compiles HTXT, an indentation-based shorthand for HTML, into
// pretty-printed HTML documents.
//
// # Quick Start
//
// For a one-off string transform, call Compile:
//
//	html := htxt.Compile("page\n  head\n    title: Hello\n  h1: Hi\n")
//
// Compile never fails. Malformed lines still produce output; use Parse to
// see the diagnostics describing what the compiler had to guess.
//
// # Source Format
//
// Each non-blank line is one node. Leading spaces give its nesting level
// (two per level by default) and a line nests under the nearest previous
// line with a smaller level:
//
//	tag                   element
//	tag: text             element with escaped inline text
//	tag: | <b>raw</b>     element with raw inline HTML
//	tag[k="v" flag]       element with attributes
//	tag[k="v"]/           self-closing element
//	- text                literal text line (escaped)
//
// The reserved tag "page" expands to an HTML5 skeleton. Children of "head"
// nodes go into <head>, everything else into <body>.
//
// # Converter
//
// Converter wraps compilation with stylesheet injection and optional PDF
// export through headless Chrome:
//
//	conv, err := htxt.NewConverter(htxt.WithStyle("default"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, htxt.Input{Source: src, PDF: true})
//
// A browser is only started on the first conversion that asks for a PDF.
// For batch work, ConverterPool hands out converters to concurrent workers;
// size it with ResolvePoolSize.
//
// # Errors
//
// Library errors wrap the sentinel values in errors.go and can be matched
// with errors.Is. In strict mode (WithStrict) any diagnostic makes Convert
// fail with ErrMalformedSource.
package htxt
