// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with builderErrorf, which keeps the
//     sentinel in the chain.
//   • Constructors never panic; option constructors do, on meaningless values.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a sequence length or segment cap below its minimum.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrTooFewLabels indicates a corpus with fewer than MinLabels labels.
var ErrTooFewLabels = errors.New("builder: label alphabet too small")

// ErrBadLabel indicates a gold label outside [0, numLabels).
var ErrBadLabel = errors.New("builder: label out of range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor that could not produce valid
// sequences from its inputs (e.g. segments that do not tile the tokens).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <message>: <err>" with err wrapped.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
