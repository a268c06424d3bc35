// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildCorpus(numLabels, bopts, cons...). Creates the
//     corpus, resolves cfg, runs cons in order.
//   - Constructors append sequences or decorate those already built; they
//     never reorder them.
//   - Determinism: same inputs, options, seed and constructor order give an
//     identical corpus.

package builder

import (
	"fmt"

	"github.com/katalvlaran/segfeat/core"
)

// Corpus is a labeled training corpus over a fixed label alphabet.
type Corpus struct {
	NumLabels int
	Sequences []*core.LabeledSequence
}

// Len returns the number of sequences.
func (c *Corpus) Len() int { return len(c.Sequences) }

// Tokens returns the total number of tokens over all sequences.
func (c *Corpus) Tokens() int {
	n := 0
	for _, s := range c.Sequences {
		n += s.Len()
	}

	return n
}

// Views returns the sequences as core.Sequence values, in order, for APIs
// that take the interface (registry.Train, Dictionary.Collect).
func (c *Corpus) Views() []core.Sequence {
	out := make([]core.Sequence, len(c.Sequences))
	for i, s := range c.Sequences {
		out[i] = s
	}

	return out
}

// Constructor applies one deterministic corpus mutation using the resolved
// builderConfig. Constructors validate early and return sentinel errors.
type Constructor func(c *Corpus, cfg builderConfig) error

// BuildCorpus creates a corpus over numLabels labels, resolves bopts and
// applies all constructors in order. The first constructor error is wrapped
// with "BuildCorpus: %w" and returned; no partial corpus is returned.
func BuildCorpus(numLabels int, bopts []BuilderOption, cons ...Constructor) (*Corpus, error) {
	if numLabels < MinLabels {
		return nil, builderErrorf(MethodBuildCorpus, ErrTooFewLabels, "numLabels=%d", numLabels)
	}
	c := &Corpus{NumLabels: numLabels}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCorpus: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("BuildCorpus: %w", err)
		}
	}

	return c, nil
}
