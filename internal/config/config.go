// Package config loads the YAML configuration read by the htxt command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

const (
	MaxPathLength  = 4096
	MaxStyleLength = 4096 // inline CSS is allowed here
	MaxIndentWidth = 16
	MaxWorkers     = 8 // matches the converter pool cap
)

// appDir is the directory name under os.UserConfigDir.
const appDir = "go-htxt"

// Config holds all configuration for page compilation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Style   string        `yaml:"style"` // style name, CSS file path, or inline CSS
	Assets  AssetsConfig  `yaml:"assets"`
	Compile CompileConfig `yaml:"compile"`
	PDF     PDFConfig     `yaml:"pdf"`
	Workers int           `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

// AssetsConfig defines where custom styles live.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded styles only
}

// CompileConfig tunes the HTXT front end.
type CompileConfig struct {
	IndentWidth int  `yaml:"indentWidth"` // 0 = 2 spaces per level
	Strict      bool `yaml:"strict"`
}

// PDFConfig enables the optional PDF export.
type PDFConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"` // 0 = converter default
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and numeric ranges. LoadConfig calls it;
// callers building a Config by hand may call it directly.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"style", c.Style, MaxStyleLength},
	}
	for _, f := range fields {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, f.name, len(f.value), f.max)
		}
	}

	if c.Compile.IndentWidth < 0 || c.Compile.IndentWidth > MaxIndentWidth {
		return fmt.Errorf("%w: compile.indentWidth must be between 0 and %d, got %d",
			ErrInvalidValue, MaxIndentWidth, c.Compile.IndentWidth)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if c.PDF.Timeout < 0 {
		return fmt.Errorf("%w: pdf.timeout must not be negative, got %s", ErrInvalidValue, c.PDF.Timeout)
	}
	return nil
}

// LoadConfig loads configuration from a file path or a config name.
// Names are searched as name.yaml then name.yml, first in the working
// directory, then in the user config directory. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CandidatePaths lists the files LoadConfig would try for name, in order.
func CandidatePaths(name string) []string {
	exts := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(exts)*2)
	for _, ext := range exts {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := CandidatePaths(name)
	for _, p := range tried {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
