package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-htxt/internal/config"
)

const envPrefix = "HTXT_"

// envConfig holds HTXT_* overrides, for CI runs without a config file.
type envConfig struct {
	ConfigPath string        // HTXT_CONFIG
	Style      string        // HTXT_STYLE
	OutputDir  string        // HTXT_OUTPUT_DIR
	Indent     int           // HTXT_INDENT
	Workers    int           // HTXT_WORKERS
	Timeout    time.Duration // HTXT_TIMEOUT
}

var knownEnvVars = map[string]bool{
	"HTXT_CONFIG":     true,
	"HTXT_STYLE":      true,
	"HTXT_OUTPUT_DIR": true,
	"HTXT_INDENT":     true,
	"HTXT_WORKERS":    true,
	"HTXT_TIMEOUT":    true,
}

// loadEnvConfig reads the HTXT_* variables. Unparsable or non-positive
// numbers and durations are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("HTXT_CONFIG"),
		Style:      getenv("HTXT_STYLE"),
		OutputDir:  getenv("HTXT_OUTPUT_DIR"),
		Indent:     positiveInt(getenv("HTXT_INDENT")),
		Workers:    positiveInt(getenv("HTXT_WORKERS")),
	}
	if d, err := time.ParseDuration(getenv("HTXT_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

func positiveInt(s string) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return 0
}

// warnUnknownEnvVars flags HTXT_* variables that are probably typos.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config fields that the file left empty.
// Precedence ends up flags > env > file > defaults; flags are merged later.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style == "" {
		cfg.Style = env.Style
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Indent > 0 && cfg.Compile.IndentWidth == 0 {
		cfg.Compile.IndentWidth = env.Indent
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
	if env.Timeout > 0 && cfg.PDF.Timeout == 0 {
		cfg.PDF.Timeout = env.Timeout
	}
}
