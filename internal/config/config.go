// Package config loads the gate configuration from .codegate.yaml.
//
// The file is optional; a missing file yields Default().
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/codegate/internal/quality"
)

// FileName is the configuration file looked up at the repository root.
const FileName = ".codegate.yaml"

// Tool configures an external checker.
type Tool struct {
	// Command is the argv prefix; file paths are appended.
	Command []string `yaml:"command"`
}

// Config holds the gate settings.
type Config struct {
	// Threshold is the minimum passing quality score, on a 0–10 scale.
	Threshold float64 `yaml:"threshold"`
	// Suffixes selects which changed files are checked.
	Suffixes []string `yaml:"suffixes"`
	Style    Tool     `yaml:"style"`
	Quality  Tool     `yaml:"quality"`
}

// Default returns the built-in configuration: pep8 for style and pylint
// for quality on .py files, passing at 7.0.
func Default() Config {
	return Config{
		Threshold: quality.DefaultThreshold,
		Suffixes:  []string{".py"},
		Style:     Tool{Command: []string{"pep8"}},
		Quality:   Tool{Command: []string{"pylint", "-f", "text"}},
	}
}

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks c for values the gate cannot work with.
func (c Config) Validate() error {
	var problems []string
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > quality.MaxScore {
		problems = append(problems, fmt.Sprintf("threshold %v is outside [0, %v]", c.Threshold, quality.MaxScore))
	}
	if len(c.Suffixes) == 0 {
		problems = append(problems, "suffixes must not be empty")
	}
	for _, s := range c.Suffixes {
		if strings.TrimSpace(s) == "" {
			problems = append(problems, "suffixes must not contain blank entries")
			break
		}
	}
	if len(c.Style.Command) == 0 || c.Style.Command[0] == "" {
		problems = append(problems, "style.command must name a program")
	}
	if len(c.Quality.Command) == 0 || c.Quality.Command[0] == "" {
		problems = append(problems, "quality.command must name a program")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Load reads the configuration at path over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from a flag or the repo root
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Fields that are not set keep their default value; unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
