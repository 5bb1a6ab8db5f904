package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htxt <input> [output]")
	fmt.Fprintln(w, "       htxt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Compile .htxt files or directories to HTML (and PDF)")
	fmt.Fprintln(w, "  preview    Print the compiled HTML with syntax highlighting")
	fmt.Fprintln(w, "  tree       Print how each source line was parsed")
	fmt.Fprintln(w, "  doctor     Check PDF export, styles and config")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'htxt help <command>' for details on a specific command.")
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htxt convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile a file, or every .htxt file under a directory, to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compilation:")
	fmt.Fprintln(w, "      --indent <n>          Spaces per nesting level (default 2)")
	fmt.Fprintln(w, "      --strict              Fail on uneven indentation or malformed attributes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path, or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory containing styles/{name}.css")
	fmt.Fprintln(w, "      --no-style            Inject no stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also write a PDF (headless Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF timeout (e.g. 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and sizes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTXT_CONFIG, HTXT_STYLE, HTXT_OUTPUT_DIR, HTXT_INDENT, HTXT_WORKERS, HTXT_TIMEOUT")
}

func printPreviewUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: htxt %s <file> [flags]\n", name)
	fmt.Fprintln(w)
	if name == "tree" {
		fmt.Fprintln(w, "Print the parsed tree, one node per line, and any diagnostics.")
	} else {
		fmt.Fprintln(w, "Print the compiled HTML, highlighted when writing to a terminal.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --indent <n>          Spaces per nesting level (default 2)")
	if name != "tree" {
		fmt.Fprintln(w, "      --style <s>           Inject a style before printing")
		fmt.Fprintln(w, "      --theme <s>           Highlighting theme (default monokai)")
		fmt.Fprintln(w, "      --no-color            Disable highlighting (NO_COLOR also works)")
	}
}

// runHelp prints help for a command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "preview", "tree":
		printPreviewUsage(env.Stdout, args[0])
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: htxt doctor [--json] [--asset-path <dir>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Report whether PDF export can find a browser, which styles are")
		fmt.Fprintln(env.Stdout, "available, and whether the config file loads.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: htxt version")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: htxt help [command]")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
