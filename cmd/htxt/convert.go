package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-htxt"
	"github.com/alnah/go-htxt/internal/config"
	"github.com/alnah/go-htxt/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("usage error")
	ErrNoInput        = errors.New("no input specified")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// conversionParams is what every file in a batch shares.
type conversionParams struct {
	pdf     bool
	quiet   bool
	verbose bool
}

func runConvertCmd(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env)
	if err != nil {
		return err
	}
	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runConvert(ctx, positional, flags, env)
}

// runConvert resolves configuration, discovers sources and converts them
// through a converter pool.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Environ(), env.Stderr)
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	outputPath := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputPath)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no %s files in %s", ErrNoInput, sourceExt, inputPath)
	}

	opts := buildOptions(cfg, flags.noStyle)

	// Surface style and asset errors once, before any worker starts.
	probe, err := htxt.NewConverter(opts...)
	if err != nil {
		return err
	}
	_ = probe.Close()

	undo := setMaxProcs(flags.common.verbose, env.Stderr)
	defer undo()

	size := htxt.ResolvePoolSize(cfg.Workers)
	if size > len(files) {
		size = len(files)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), size)
	}

	pool := htxt.NewConverterPool(size, opts...)
	defer pool.Close()

	params := &conversionParams{
		pdf:     cfg.PDF.Enabled,
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
	}
	results := convertBatch(ctx, &poolAdapter{pool: pool}, files, params)
	return printResults(results, params, env)
}

// loadConfig loads --config, falling back to HTXT_CONFIG, then defaults.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags over cfg.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.common.indent != 0 {
		cfg.Compile.IndentWidth = flags.common.indent
	}
	if flags.strict {
		cfg.Compile.Strict = true
	}
	if flags.pdf {
		cfg.PDF.Enabled = true
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (use a positive duration like 30s or 2m)", ErrInvalidTimeout, flags.timeout)
		}
		cfg.PDF.Timeout = d
	}
	return nil
}

// buildOptions translates the merged config into converter options.
func buildOptions(cfg *config.Config, noStyle bool) []htxt.Option {
	var opts []htxt.Option
	if cfg.Compile.IndentWidth > 0 {
		opts = append(opts, htxt.WithIndentWidth(cfg.Compile.IndentWidth))
	}
	if cfg.Compile.Strict {
		opts = append(opts, htxt.WithStrict(true))
	}
	if cfg.PDF.Timeout > 0 {
		opts = append(opts, htxt.WithTimeout(cfg.PDF.Timeout))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, htxt.WithAssetPath(cfg.Assets.BasePath))
	}
	if !noStyle && cfg.Style != "" {
		opts = append(opts, htxt.WithStyle(cfg.Style))
	}
	return opts
}

func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	case len(args) == 1:
		return args[0], nil
	case cfg.Input.DefaultDir != "":
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, htxt.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, htxt.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.CandidatePaths("htxt"))
	case errors.Is(err, htxt.ErrStyleNotFound):
		return hints.ForStyleNotFound(htxt.AvailableStyles(""))
	case errors.Is(err, htxt.ErrMalformedSource):
		return hints.ForMalformedSource()
	case errors.Is(err, ErrWriteOutput), errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
