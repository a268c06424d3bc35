// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// impl_random.go — RandomSegmentation(count, n).
//
// Model:
//   - Each sequence has exactly n tokens.
//   - Segment lengths are uniform in [1, maxSegLen], the last one truncated
//     to fit; labels are uniform over the alphabet.
//   - Tokens are drawn uniformly from the vocabulary (WithVocabulary) or from
//     tokenFn(0..vocabSize-1).
//
// Determinism: one RNG stream, consumed per sequence as
// (segment length, label, tokens…) in left-to-right order.

package builder

import "github.com/katalvlaran/segfeat/core"

// RandomSegmentation adds count random gold sequences of n tokens each.
// Requires WithSeed or WithRand.
func RandomSegmentation(count, n int) Constructor {
	return func(c *Corpus, cfg builderConfig) error {
		if err := validateMin(MethodRandomSegmentation, count, 0); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSegmentation, n, MinSequenceLength); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomSegmentation, ErrNeedRandSource, "count=%d n=%d", count, n)
		}

		for k := 0; k < count; k++ {
			tokens := make([]string, 0, n)
			var segs []core.Segment
			for start := 0; start < n; {
				l := min(1+cfg.rng.Intn(cfg.maxSegLen), n-start)
				y := cfg.rng.Intn(c.NumLabels)
				for i := 0; i < l; i++ {
					tokens = append(tokens, cfg.token())
				}
				segs = append(segs, core.Segment{Start: start, End: start + l - 1, Label: y})
				start += l
			}
			seq, err := core.NewSegmented(tokens, segs)
			if err != nil {
				return builderErrorf(MethodRandomSegmentation, ErrConstructFailed, "sequence %d: %v", k, err)
			}
			c.Sequences = append(c.Sequences, seq)
		}

		return nil
	}
}
