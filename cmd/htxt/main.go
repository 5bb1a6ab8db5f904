package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-htxt"
	"github.com/alnah/go-htxt/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args to a command and returns the process exit code.
// A first argument that is not a command is an input file:
// "htxt <input> [output]".
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(rest, env)
	case "preview":
		err = runPreview(rest, env)
	case "tree":
		err = runTree(rest, env)
	case "doctor":
		err = runDoctor(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "htxt %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		if strings.HasPrefix(cmd, "-") {
			fmt.Fprintf(env.Stderr, "unknown flag: %s\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		return runCompile(args[1:], env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runCompile is the plain "htxt <input> [output]" form: one file, default
// settings, no stylesheet. A missing input is reported on stdout.
func runCompile(args []string, env *Environment) int {
	if len(args) > 2 {
		fmt.Fprintln(env.Stderr, "Usage: htxt <input> [output]")
		return ExitUsage
	}

	input := args[0]
	output := fileutil.ReplaceExt(input, ".html")
	if len(args) == 2 {
		output = args[1]
	}

	data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(env.Stdout, "Error: input file %q not found\n", input)
			return ExitGeneral
		}
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitIO
	}

	src, err := htxt.DecodeSource(data)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %s: %v\n", input, err)
		return ExitIO
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
			return ExitIO
		}
	}
	// #nosec G306 -- HTML output is meant to be readable
	if err := os.WriteFile(output, []byte(htxt.Compile(src)), filePermissions); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return ExitIO
	}

	fmt.Fprintf(env.Stdout, "Wrote %s\n", output)
	return ExitSuccess
}
