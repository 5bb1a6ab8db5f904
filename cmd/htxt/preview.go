package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-htxt"
	"github.com/alnah/go-htxt/internal/highlight"
)

// readSource loads and decodes one source file.
func readSource(args []string) (string, string, error) {
	if len(args) != 1 {
		return "", "", fmt.Errorf("%w: expected exactly one input file", ErrUsage)
	}
	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	src, err := htxt.DecodeSource(data)
	if err != nil {
		return "", "", err
	}
	return args[0], src, nil
}

// runPreview prints the compiled HTML, highlighted when stdout is a terminal.
func runPreview(args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags("preview", args, env)
	if err != nil {
		return err
	}
	_, src, err := readSource(positional)
	if err != nil {
		return err
	}

	opts := []htxt.Option{htxt.WithStyle(flags.style)}
	if flags.common.indent > 0 {
		opts = append(opts, htxt.WithIndentWidth(flags.common.indent))
	}
	conv, err := htxt.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer conv.Close()

	res, err := conv.Convert(context.Background(), htxt.Input{Source: src})
	if err != nil {
		return err
	}

	color := !flags.noColor && env.Getenv("NO_COLOR") == "" && highlight.WriterIsTerminal(env.Stdout)
	return highlight.HTML(env.Stdout, string(res.HTML), color, flags.theme)
}

// runTree prints the parsed outline and any diagnostics.
func runTree(args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags("tree", args, env)
	if err != nil {
		return err
	}
	name, src, err := readSource(positional)
	if err != nil {
		return err
	}

	doc := htxt.Parse(src, flags.common.indent)
	fmt.Fprint(env.Stdout, doc.Outline())
	if flags.common.quiet {
		return nil
	}
	for _, d := range doc.Diagnostics {
		fmt.Fprintf(env.Stderr, "warning: %s: %s\n", name, d)
	}
	return nil
}
