// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// impl_sequences.go — constructors that add explicit sequences.
//
// Contract:
//   - Labels must lie in [0, numLabels) (else ErrBadLabel).
//   - Segments must tile the tokens left to right (else ErrConstructFailed,
//     with core.ErrBadSegmentation also in the chain).
//   - Tokens are copied; callers may reuse their slices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/segfeat/core"
)

// Segments adds one gold sequence built from explicit segments.
func Segments(tokens []string, segs []core.Segment) Constructor {
	return func(c *Corpus, _ builderConfig) error {
		labels := make([]int, len(segs))
		for i, s := range segs {
			labels[i] = s.Label
		}
		if err := validateLabels(MethodSegments, labels, c.NumLabels); err != nil {
			return err
		}
		seq, err := core.NewSegmented(clone(tokens), segs)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", MethodSegments, ErrConstructFailed, err)
		}
		c.Sequences = append(c.Sequences, seq)

		return nil
	}
}

// Labels adds one gold sequence whose segments are the maximal runs of
// equal labels.
func Labels(tokens []string, labels []int) Constructor {
	return func(c *Corpus, _ builderConfig) error {
		if err := validateLabels(MethodLabels, labels, c.NumLabels); err != nil {
			return err
		}
		seq, err := core.FromLabels(clone(tokens), labels)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", MethodLabels, ErrConstructFailed, err)
		}
		c.Sequences = append(c.Sequences, seq)

		return nil
	}
}

// Unlabeled adds one sequence without a gold segmentation.
func Unlabeled(tokens []string) Constructor {
	return func(c *Corpus, _ builderConfig) error {
		c.Sequences = append(c.Sequences, core.NewSequence(clone(tokens)))

		return nil
	}
}

func clone(tokens []string) []string {
	cp := make([]string, len(tokens))
	copy(cp, tokens)

	return cp
}
