// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • tokenFn    = LetterTokenFn  ("A","B",…)
//   • rng        = nil            (pure unless seeded)
//   • vocabulary = nil            (draw from tokenFn(0..vocabSize-1))
//   • vocabSize  = 26
//   • maxSegLen  = DefaultMaxSegmentLength

package builder

import "math/rand"

const defaultVocabSize = 26

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	tokenFn    TokenFn
	rng        *rand.Rand
	vocabulary []string
	vocabSize  int
	maxSegLen  int
}

// newBuilderConfig applies options in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		tokenFn:   LetterTokenFn,
		vocabSize: defaultVocabSize,
		maxSegLen: DefaultMaxSegmentLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// token draws one random token. rng must be non-nil.
func (c builderConfig) token() string {
	if len(c.vocabulary) > 0 {
		return c.vocabulary[c.rng.Intn(len(c.vocabulary))]
	}

	return c.tokenFn(c.rng.Intn(c.vocabSize))
}
