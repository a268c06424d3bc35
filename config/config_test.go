package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/config"
	"github.com/katalvlaran/segfeat/registry"
	"github.com/katalvlaran/segfeat/window"
)

const model = `
labels: [O, PER, ORG]
max_memory: 4
word_cutoff: 1
windows:
  - {name: first, anchor: left, start: 0, end: 0, min_length: 2}
  - {name: last, anchor: right, start: 0, end: 0}
windowed:
  - {name: inner, anchor: middle, start: 1, end: -1, min_length: 3, max_length: 5}
patterns:
  - {name: digits, expr: '[0-9]+'}
candidates: true
workers: 2
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseModel(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(model))
	require.NoError(t, err)
	assert.Equal(t, []string{"O", "PER", "ORG"}, cfg.Labels)
	assert.Equal(t, 3, cfg.NumLabels())
	assert.Equal(t, 1, cfg.LabelIndex("PER"))
	assert.Equal(t, -1, cfg.LabelIndex("LOC"))
	assert.Equal(t, 4, cfg.MaxMemory)
	assert.Equal(t, 1, cfg.WordCutoff)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Candidates)
	assert.Equal(t, []atomic.Pattern{{Name: "digits", Expr: "[0-9]+"}}, cfg.Patterns)

	w, err := cfg.Windowed[0].Window()
	require.NoError(t, err)
	assert.Equal(t, window.Middle, w.Regime())
	assert.Equal(t, 3, w.MinLength())
	assert.Equal(t, 5, w.MaxLength())
	assert.Equal(t, cfg.Windowed[0], config.FromWindow(w))

	lc, err := cfg.LoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lc.Level)
	assert.Equal(t, "json", lc.Format)
}

// TestRegistryOptions builds the default registry from the parsed model.
func TestRegistryOptions(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(model))
	require.NoError(t, err)
	opts, err := cfg.RegistryOptions()
	require.NoError(t, err)

	dict, err := atomic.NewDictionary(cfg.NumLabels())
	require.NoError(t, err)
	r, err := registry.NewDefault(cfg.NumLabels(), dict, opts...)
	require.NoError(t, err)
	assert.Equal(t, 9, r.NumFamilies())
	assert.Equal(t, "regex.W.inner", r.FamilyName(7))
	assert.Equal(t, "candidate", r.FamilyName(8))
	assert.Equal(t, 4, r.MaxBoundaryGap())
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	opts, err := cfg.RegistryOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"no labels", "labels: []", config.ErrNoLabels},
		{"duplicate", "labels: [A, A]", config.ErrDuplicateLabel},
		{"max memory", "max_memory: 0", config.ErrInvalidValue},
		{"cutoff", "word_cutoff: -1", config.ErrInvalidValue},
		{"workers", "workers: 0", config.ErrInvalidValue},
		{"level", "log_level: loud", config.ErrInvalidValue},
		{"format", "log_format: xml", config.ErrInvalidValue},
		{"anchor", "windows: [{name: w, anchor: up}]", config.ErrInvalidWindow},
		{"finite left", "windows: [{name: w, anchor: left, max_length: 2}]", window.ErrFiniteMaxLength},
		{"bad middle", "windowed: [{name: w, anchor: middle, start: -1, end: 1}]", window.ErrUnsupportedWindow},
		{"negative length", "windowed: [{name: w, anchor: middle, min_length: -1}]", config.ErrInvalidWindow},
		{"pattern", "patterns: [{name: p, expr: '('}]", atomic.ErrBadPattern},
	}
	for _, tc := range cases {
		_, err := config.Parse(strings.NewReader(tc.yaml))
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	_, err := config.Parse(strings.NewReader("label: [A]"))
	assert.Error(t, err, "unknown fields are rejected")
}

// The env tests mutate the process environment and cannot run in parallel.

func TestLoadEnvOverrides(t *testing.T) {
	modelPath := write(t, "model.yaml", model)
	envPath := write(t, ".env", "SEGFEAT_MAX_MEMORY=6\nSEGFEAT_WORKERS=3\nSEGFEAT_LOG_FORMAT=text\n")
	t.Setenv(config.EnvWorkers, "5")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.Load(modelPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxMemory, ".env overrides the model")
	assert.Equal(t, 5, cfg.Workers, "environment overrides .env")
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	_, set := os.LookupEnv(config.EnvMaxMemory)
	assert.False(t, set, ".env does not leak into the process")
}

func TestLoadMissingEnvFile(t *testing.T) {
	t.Setenv(config.EnvMaxMemory, "")

	cfg, err := config.Load(write(t, "model.yaml", model), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxMemory)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(config.EnvWorkers, "many")

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load("", "")
	assert.ErrorIs(t, err, config.ErrInvalidValue)

	t.Setenv(config.EnvWorkers, "")
	t.Setenv(config.EnvMaxMemory, "0")
	_, err = config.Load("", "")
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}
