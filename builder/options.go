// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes corpus construction by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithTokenScheme sets how synthetic tokens are named. Panics on nil.
func WithTokenScheme(fn TokenFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTokenScheme(nil)")
	}
	return func(c *builderConfig) {
		c.tokenFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVocabulary draws random tokens from words instead of the token scheme.
// Panics on an empty list.
func WithVocabulary(words ...string) BuilderOption {
	if len(words) == 0 {
		panic("builder: WithVocabulary()")
	}
	cp := make([]string, len(words))
	copy(cp, words)
	return func(c *builderConfig) {
		c.vocabulary = cp
	}
}

// WithVocabularySize sets how many scheme tokens random sequences draw from
// when no vocabulary is given. Panics if n < 1.
func WithVocabularySize(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithVocabularySize(n<1)")
	}
	return func(c *builderConfig) {
		c.vocabSize = n
	}
}

// WithMaxSegmentLength caps random gold segment lengths. Panics if n < 1.
func WithMaxSegmentLength(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxSegmentLength(n<1)")
	}
	return func(c *builderConfig) {
		c.maxSegLen = n
	}
}
