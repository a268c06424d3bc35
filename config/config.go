// SPDX-License-Identifier: MIT
// Package: segfeat/config
//
// config.go — model file, environment overlay and validation.

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/internal/logger"
	"github.com/katalvlaran/segfeat/registry"
)

// Environment variables applied over the model file.
const (
	EnvMaxMemory = "SEGFEAT_MAX_MEMORY"
	EnvLogLevel  = "SEGFEAT_LOG_LEVEL"
	EnvLogFormat = "SEGFEAT_LOG_FORMAT"
	EnvWorkers   = "SEGFEAT_WORKERS"
)

var (
	// ErrNoLabels indicates an empty label list.
	ErrNoLabels = errors.New("config: at least one label is required")

	// ErrDuplicateLabel indicates a label named twice.
	ErrDuplicateLabel = errors.New("config: duplicate label")

	// ErrInvalidValue indicates a numeric setting out of range or unparsable.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrInvalidWindow indicates a window entry that cannot be built.
	ErrInvalidWindow = errors.New("config: invalid window")
)

// Config is a validated model description plus runtime settings.
type Config struct {
	Labels     []string         `yaml:"labels"`
	MaxMemory  int              `yaml:"max_memory"`
	WordCutoff int              `yaml:"word_cutoff"`
	Windows    []WindowConfig   `yaml:"windows"`
	Windowed   []WindowConfig   `yaml:"windowed"`
	Patterns   []atomic.Pattern `yaml:"patterns"`
	Candidates bool             `yaml:"candidates"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Workers   int    `yaml:"workers"`
}

// Default returns the settings used when no model file is given: a single
// label "O", default windows and patterns, Info JSON logs, one worker per CPU.
func Default() *Config {
	return &Config{
		Labels:    []string{"O"},
		MaxMemory: registry.DefaultMaxMemory,
		LogLevel:  "info",
		LogFormat: logger.FormatJSON,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Load reads modelPath (skipped when empty) over Default, applies the .env
// file at envPath (skipped when empty or missing) and the environment, and
// validates the result.
func Load(modelPath, envPath string) (*Config, error) {
	cfg := Default()
	if modelPath != "" {
		f, err := os.Open(modelPath)
		if err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return nil, fmt.Errorf("Load(%s): %w", modelPath, err)
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		m, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("Load(%s): %w", envPath, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.overlay(lookup); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

// Parse decodes a model file from r over Default and validates it. The
// environment is not consulted.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) overlay(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMaxMemory, &c.MaxMemory},
		{EnvWorkers, &c.Workers},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", e.key, v, ErrInvalidValue)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}

	return nil
}

// Validate checks every setting and returns the first violation.
func (c *Config) Validate() error {
	if len(c.Labels) == 0 {
		return fmt.Errorf("Validate: %w", ErrNoLabels)
	}
	seen := make(map[string]bool, len(c.Labels))
	for _, l := range c.Labels {
		if seen[l] {
			return fmt.Errorf("Validate: %q: %w", l, ErrDuplicateLabel)
		}
		seen[l] = true
	}
	if c.MaxMemory < 1 {
		return fmt.Errorf("Validate: max_memory=%d: %w", c.MaxMemory, ErrInvalidValue)
	}
	if c.WordCutoff < 0 {
		return fmt.Errorf("Validate: word_cutoff=%d: %w", c.WordCutoff, ErrInvalidValue)
	}
	if c.Workers < 1 {
		return fmt.Errorf("Validate: workers=%d: %w", c.Workers, ErrInvalidValue)
	}
	if _, err := c.LoggerConfig(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	for _, list := range [][]WindowConfig{c.Windows, c.Windowed} {
		for _, wc := range list {
			if _, err := wc.Window(); err != nil {
				return fmt.Errorf("Validate: %w", err)
			}
		}
	}
	if len(c.Patterns) > 0 {
		if _, err := atomic.NewRegex(c.Patterns...); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	}

	return nil
}

// NumLabels returns the size of the label alphabet.
func (c *Config) NumLabels() int { return len(c.Labels) }

// LabelIndex returns the index of name, or -1.
func (c *Config) LabelIndex(name string) int {
	for i, l := range c.Labels {
		if l == name {
			return i
		}
	}

	return -1
}

// LoggerConfig converts the log settings.
func (c *Config) LoggerConfig() (logger.Config, error) {
	lvl, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.Config{}, fmt.Errorf("log_level: %w: %w", ErrInvalidValue, err)
	}
	if err := logger.ValidateFormat(c.LogFormat); err != nil {
		return logger.Config{}, fmt.Errorf("log_format: %w: %w", ErrInvalidValue, err)
	}

	return logger.Config{Level: lvl, Format: c.LogFormat}, nil
}

// RegistryOptions converts the model settings for registry.NewDefault.
func (c *Config) RegistryOptions() ([]registry.Option, error) {
	opts := []registry.Option{
		registry.WithMaxMemory(c.MaxMemory),
		registry.WithWordCutoff(c.WordCutoff),
	}
	if len(c.Windows) > 0 {
		ws, err := windows(c.Windows)
		if err != nil {
			return nil, fmt.Errorf("RegistryOptions: %w", err)
		}
		opts = append(opts, registry.WithWindows(ws...))
	}
	if len(c.Windowed) > 0 {
		ws, err := windows(c.Windowed)
		if err != nil {
			return nil, fmt.Errorf("RegistryOptions: %w", err)
		}
		opts = append(opts, registry.WithWindowed(ws...))
	}
	if len(c.Patterns) > 0 {
		opts = append(opts, registry.WithPatterns(c.Patterns...))
	}
	if c.Candidates {
		opts = append(opts, registry.WithCandidates())
	}

	return opts, nil
}
