package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-htxt"
	"github.com/alnah/go-htxt/internal/config"
	"github.com/alnah/go-htxt/internal/hints"
)

// Doctor statuses, worst last.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorReport is what "htxt doctor" checks. HTML output needs nothing
// external, so a missing browser only matters for --pdf and is a warning.
type doctorReport struct {
	Status   string      `json:"status"`
	Browser  browserInfo `json:"browser"`
	Styles   []string    `json:"styles"`
	Config   string      `json:"config,omitempty"`
	Platform string      `json:"platform"`
	CI       bool        `json:"ci"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

type browserInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// lookPath finds a Chrome binary; swapped in tests.
var lookPath = launcher.LookPath

// browserVersion runs "<bin> --version"; swapped in tests.
var browserVersion = func(bin string) (string, error) {
	out, err := exec.Command(bin, "--version").Output() // #nosec G204 -- binary from ROD_BROWSER_BIN or PATH
	return strings.TrimSpace(string(out)), err
}

func runDoctor(args []string, env *Environment) error {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	asJSON := fs.Bool("json", false, "print the report as JSON")
	assetPath := fs.String("asset-path", "", "also list styles from this directory")
	fs.Usage = func() { fmt.Fprintln(env.Stderr, "Usage: htxt doctor [--json] [--asset-path <dir>]") }
	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}

	r := diagnose(env, *assetPath)
	if *asJSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return err
		}
	} else {
		printDoctorReport(env.Stdout, r)
	}

	if r.Status == statusErrors {
		return fmt.Errorf("doctor found %d problem(s)", len(r.Errors))
	}
	return nil
}

func diagnose(env *Environment, assetPath string) *doctorReport {
	r := &doctorReport{
		Status:   statusReady,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		CI:       env.Getenv("CI") != "" || env.Getenv("GITHUB_ACTIONS") != "" || env.Getenv("GITLAB_CI") != "",
	}

	checkBrowser(env, r)
	checkStyles(assetPath, r)
	checkConfig(env, r)

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	}
	return r
}

func checkBrowser(env *Environment, r *doctorReport) {
	bin := env.Getenv("ROD_BROWSER_BIN")
	if bin == "" {
		var found bool
		if bin, found = lookPath(); !found {
			r.Warnings = append(r.Warnings, "Chrome/Chromium not found; --pdf will fail (install Chrome or set ROD_BROWSER_BIN)")
			return
		}
	}
	if _, err := os.Stat(bin); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("ROD_BROWSER_BIN points to a missing file: %s", bin))
		return
	}

	r.Browser.Found = true
	r.Browser.Path = bin
	if v, err := browserVersion(bin); err == nil {
		r.Browser.Version = v
	} else {
		r.Warnings = append(r.Warnings, fmt.Sprintf("could not read browser version: %v", err))
	}

	if (r.CI || hints.IsInContainer()) && env.Getenv("ROD_NO_SANDBOX") == "" {
		r.Warnings = append(r.Warnings, "container or CI detected; set ROD_NO_SANDBOX=1 if --pdf fails")
	}
}

func checkStyles(assetPath string, r *doctorReport) {
	if assetPath != "" {
		conv, err := htxt.NewConverter(htxt.WithAssetPath(assetPath))
		if err != nil {
			r.Errors = append(r.Errors, err.Error())
		} else {
			_ = conv.Close()
		}
	}
	r.Styles = htxt.AvailableStyles(assetPath)
}

func checkConfig(env *Environment, r *doctorReport) {
	name := env.Getenv("HTXT_CONFIG")
	if name == "" {
		for _, p := range config.CandidatePaths("htxt") {
			if _, err := os.Stat(p); err == nil {
				name = p
				break
			}
		}
	}
	if name == "" {
		return
	}
	if _, err := config.LoadConfig(name); err != nil {
		r.Errors = append(r.Errors, err.Error())
		return
	}
	r.Config = name
}

func printDoctorReport(w io.Writer, r *doctorReport) {
	fmt.Fprintln(w, "htxt doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PDF export")
	if r.Browser.Found {
		fmt.Fprintf(w, "  [OK] Browser: %s\n", r.Browser.Path)
		if r.Browser.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Browser.Version)
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Browser: not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Styles")
	fmt.Fprintf(w, "  [OK] %s\n", strings.Join(r.Styles, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s\n", r.Platform)
	if r.Config != "" {
		fmt.Fprintf(w, "  [OK] Config: %s\n", r.Config)
	}
	if r.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "[WARN] %s\n", warn)
	}
	for _, err := range r.Errors {
		fmt.Fprintf(w, "[ERROR] %s\n", err)
	}
	if len(r.Warnings)+len(r.Errors) > 0 {
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: ready")
	case statusWarnings:
		fmt.Fprintln(w, "Status: ready with warnings")
	default:
		fmt.Fprintln(w, "Status: not ready")
	}
}
