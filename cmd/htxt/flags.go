package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags are shared by the commands that read sources; config is
// registered by convert only.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	indent  int
}

// convertFlags holds the flags of the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	timeout   string
	style     string
	noStyle   bool
	assetPath string
	pdf       bool
	strict    bool
}

// previewFlags holds the flags of the preview command.
type previewFlags struct {
	common  commonFlags
	style   string
	noColor bool
	theme   string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and sizes")
	fs.IntVar(&f.indent, "indent", 0, "spaces per nesting level (0 = 2)")
}

// parseConvertFlags parses convert flags and returns the positional args.
func parseConvertFlags(args []string, env *Environment) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF timeout (e.g. 30s, 2m)")
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or inline CSS")
	fs.BoolVar(&f.noStyle, "no-style", false, "inject no stylesheet")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css")
	fs.BoolVar(&f.pdf, "pdf", false, "also write a PDF next to each HTML file")
	fs.BoolVar(&f.strict, "strict", false, "fail on uneven indentation or malformed attributes")
	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview flags; tree uses the same set.
func parsePreviewFlags(name string, args []string, env *Environment) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &previewFlags{}

	fs.StringVar(&f.style, "style", "", "inject this style before printing")
	fs.BoolVar(&f.noColor, "no-color", false, "disable syntax highlighting")
	fs.StringVar(&f.theme, "theme", "", "highlighting theme (default monokai)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPreviewUsage(env.Stderr, name) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}
