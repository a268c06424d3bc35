// SPDX-License-Identifier: MIT
// Package: segfeat/registry
//
// options.go — functional options for New and NewDefault.
//
// Contract:
//   • Option constructors panic on meaningless values (WithMaxMemory(0)).
//   • Window and pattern validation happens when NewDefault builds families,
//     and surfaces as an error.

package registry

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/window"
)

// DefaultMaxMemory is the default segment-length cap.
const DefaultMaxMemory = 1

// Option customizes a Registry.
type Option func(*options)

type options struct {
	maxMemory  int
	wordCutoff int
	windows    []window.Window
	windowed   []window.Window
	patterns   []atomic.Pattern
	candidates bool
	logger     *slog.Logger
}

func newOptions(opts ...Option) options {
	o := options{
		maxMemory: DefaultMaxMemory,
		windows:   DefaultWindows(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMaxMemory caps segment length for the length and candidate families.
// Panics if n < 1.
func WithMaxMemory(n int) Option {
	if n < 1 {
		panic("registry: WithMaxMemory(n<1)")
	}
	return func(o *options) {
		o.maxMemory = n
	}
}

// WithWordCutoff sets how often a (token, label) pair must be seen, exclusive,
// before the word family fires it.
func WithWordCutoff(c int) Option {
	return func(o *options) {
		o.wordCutoff = c
	}
}

// WithWindows replaces the fixed-placement windows of the word and regex families.
func WithWindows(ws ...window.Window) Option {
	return func(o *options) {
		if len(ws) > 0 {
			o.windows = ws
		}
	}
}

// WithWindowed adds one per-label regex family per window, each enumerating
// every placement the window allows.
func WithWindowed(ws ...window.Window) Option {
	return func(o *options) {
		o.windowed = append(o.windowed, ws...)
	}
}

// WithPatterns replaces the regex pattern table.
func WithPatterns(ps ...atomic.Pattern) Option {
	return func(o *options) {
		o.patterns = ps
	}
}

// WithCandidates adds a per-label regex family over the sequence's candidate
// segments (sequences implementing core.CandidateIndex).
func WithCandidates() Option {
	return func(o *options) {
		o.candidates = true
	}
}

// WithLogger sets the debug logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("registry: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}
